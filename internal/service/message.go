package service

import (
	"context"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// MessageRepository defines the interface for community message storage
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	List(ctx context.Context, filter database.Filter, limit int) ([]model.Message, error)
}

// messageFilters enumerates the query parameters accepted when listing
// community messages.
var messageFilters = map[string]bool{
	"topic":  true,
	"author": true,
}

// MessageService handles community board logic
type MessageService struct {
	messageRepo MessageRepository
}

// MessageServiceConfig holds configuration for the message service
type MessageServiceConfig struct {
	MessageRepo MessageRepository
}

// NewMessageService creates a new message service
func NewMessageService(cfg MessageServiceConfig) *MessageService {
	return &MessageService{
		messageRepo: cfg.MessageRepo,
	}
}

// CreateMessage persists a new community board message
func (s *MessageService) CreateMessage(ctx context.Context, req *model.CreateMessageRequest) (*model.Message, error) {
	msg := &model.Message{
		Author:  req.Author,
		Content: req.Content,
		Topic:   req.Topic,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages retrieves messages matching the given query parameters
func (s *MessageService) ListMessages(ctx context.Context, params map[string]string) ([]model.Message, error) {
	filter, err := buildEqualityFilter(params, messageFilters, "messages")
	if err != nil {
		return nil, err
	}
	return s.messageRepo.List(ctx, filter, 0)
}
