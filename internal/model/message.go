package model

import "time"

// CollectionMessage is the document collection for community messages.
const CollectionMessage = "message"

// Message topic constants. Conventional vocabulary only; any string is accepted.
const (
	TopicGeneral   = "general"
	TopicRequests  = "requests"
	TopicOfferings = "offerings"
	TopicRideshare = "rideshare"
	TopicQA        = "Q&A"
)

// Message represents a community board message
type Message struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"` // name or nickname
	Content   string    `json:"content"`
	Topic     *string   `json:"topic,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// CreateMessageRequest represents a request to post a message
type CreateMessageRequest struct {
	Author  string  `json:"author"`
	Content string  `json:"content"`
	Topic   *string `json:"topic,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateMessageRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Author == "" {
		errors = append(errors, FieldError{Field: "author", Message: "author is required"})
	}
	if r.Content == "" {
		errors = append(errors, FieldError{Field: "content", Message: "content is required"})
	}

	return errors
}
