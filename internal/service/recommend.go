package service

import (
	"context"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// maxRecommendations caps how many retreats a single recommendation returns.
const maxRecommendations = 8

// spiritMessages maps a declared energy to the guidance line returned with
// every recommendation. Lookup is exact; anything unrecognized falls back.
var spiritMessages = map[string]string{
	model.EnergyCalm:           "The waters are still today; gentle breath and soft horizons call you.",
	model.EnergyTransformative: "Winds of change swirl around you; trust the metamorphosis.",
	model.EnergyAdventurous:    "Peaks and tides await; your courage is the compass.",
	model.EnergyRestorative:    "Let the earth hold you; sleep, nourish, and renew.",
}

// spiritFallback is returned when no energy matches.
const spiritFallback = "Nature listens. Share more, and I’ll guide you further."

// RecommendationService matches retreats to seeker preferences
type RecommendationService struct {
	retreatRepo RetreatRepository
}

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	RetreatRepo RetreatRepository
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(cfg RecommendationServiceConfig) *RecommendationService {
	return &RecommendationService{
		retreatRepo: cfg.RetreatRepo,
	}
}

// Recommend returns up to eight retreats matching the seeker's preferences,
// together with a spirit message for their declared energy.
//
// Each preference narrows the match only when present: preferred_nature must
// equal the retreat's nature type, duration bounds duration_days from above,
// and budget bounds price_usd from above. Presence of the numeric preferences
// is a nil-check on the pointer, so an explicit zero budget means "free
// retreats only" rather than "no budget preference".
func (s *RecommendationService) Recommend(ctx context.Context, pref *model.Preference) (*model.Recommendation, error) {
	filter := database.Filter{}
	if pref.PreferredNature != "" {
		filter = filter.Equals("nature_type", pref.PreferredNature)
	}
	if pref.Duration != nil {
		filter = filter.AtMost("duration_days", *pref.Duration)
	}
	if pref.Budget != nil {
		filter = filter.AtMost("price_usd", *pref.Budget)
	}

	retreats, err := s.retreatRepo.List(ctx, filter, 0)
	if err != nil {
		return nil, err
	}
	if len(retreats) > maxRecommendations {
		retreats = retreats[:maxRecommendations]
	}

	return &model.Recommendation{
		Matches:       retreats,
		SpiritMessage: spiritMessageFor(pref.Energy),
	}, nil
}

// spiritMessageFor picks the guidance line for a declared energy
func spiritMessageFor(energy string) string {
	if msg, ok := spiritMessages[energy]; ok {
		return msg
	}
	return spiritFallback
}
