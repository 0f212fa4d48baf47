package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// CreateTopic creates a topic directly, outside the generation pipeline.
// Hand-made topics are complete on arrival, so they start READY.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	input.Title = strings.TrimSpace(input.Title)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		Title:       input.Title,
		Category:    input.Category,
		Content:     input.Content,
		Description: input.Description,
		Status:      domain.TopicStatusReady,
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("category", topic.Category.String()))

	return topic, nil
}

// GetTopic returns a topic by ID.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	return s.topics.GetByID(ctx, topicID)
}

// AppendItemsToTopic appends items to a topic after checking that every
// item's kind matches the topic's category.
func (s *Service) AppendItemsToTopic(ctx context.Context, topicID uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	return s.writeItems(ctx, topicID, items, s.topics.AppendItems)
}

// ReplaceTopicItems replaces a topic's item collection wholesale, under the
// same kind check as an append.
func (s *Service) ReplaceTopicItems(ctx context.Context, topicID uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	return s.writeItems(ctx, topicID, items, s.topics.ReplaceItems)
}

func (s *Service) writeItems(ctx context.Context, topicID uuid.UUID, items []domain.Item,
	write func(context.Context, uuid.UUID, []domain.Item) (*domain.Topic, error)) (*domain.Topic, error) {

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if err := topic.ValidateItems(items); err != nil {
		return nil, err
	}

	updated, err := write(ctx, topicID, items)
	if err != nil {
		return nil, fmt.Errorf("content.writeItems: %w", err)
	}
	return updated, nil
}
