package model

// Energy constants. Conventional vocabulary; unknown values fall back to the
// default spirit message.
const (
	EnergyCalm           = "calm"
	EnergyTransformative = "transformative"
	EnergyAdventurous    = "adventurous"
	EnergyRestorative    = "restorative"
)

// Preference represents quiz/recommendation input. Every field is optional.
// Budget and Duration are pointers so an explicit zero is distinguishable
// from an absent value.
type Preference struct {
	Energy          string   `json:"energy,omitempty"`
	PreferredNature string   `json:"preferred_nature,omitempty"`
	Budget          *float64 `json:"budget,omitempty"` // approximate budget in USD
	Duration        *int     `json:"duration,omitempty"`
	Goals           string   `json:"goals,omitempty"` // free text, reserved for future rules
}

// Recommendation is the response payload for recommend and quiz
type Recommendation struct {
	Matches       []Retreat `json:"matches"`
	SpiritMessage string    `json:"spirit_message"`
}
