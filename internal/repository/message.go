package repository

import (
	"context"
	"time"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// MessageRepository handles community message document access
type MessageRepository struct {
	store database.Store
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(store database.Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// Create persists a new message and fills in its generated fields
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	msg.CreatedOn = time.Now().UTC()

	id, err := r.store.CreateDocument(ctx, model.CollectionMessage, messageDocument(msg))
	if err != nil {
		return err
	}

	msg.ID = id
	return nil
}

// List retrieves messages matching the filter
func (r *MessageRepository) List(ctx context.Context, filter database.Filter, limit int) ([]model.Message, error) {
	docs, err := r.store.GetDocuments(ctx, model.CollectionMessage, filter, limit)
	if err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, parseMessageDocument(doc))
	}
	return messages, nil
}

func messageDocument(msg *model.Message) database.Document {
	return database.Document{
		"author":     msg.Author,
		"content":    msg.Content,
		"topic":      msg.Topic,
		"created_on": msg.CreatedOn,
	}
}

func parseMessageDocument(doc database.Document) model.Message {
	msg := model.Message{
		ID:      getString(doc, "id"),
		Author:  getString(doc, "author"),
		Content: getString(doc, "content"),
		Topic:   getStringPtr(doc, "topic"),
	}
	if t := getTime(doc, "created_on"); t != nil {
		msg.CreatedOn = *t
	}
	return msg
}
