// Package content provides business logic for courses, topics, and their
// items.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// courseRepo defines the course repository interface needed by the content service.
type courseRepo interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error)
	AppendTopic(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error)
}

// topicRepo defines the topic repository interface needed by the content service.
type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Topic, error)
	AppendItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error)
	ReplaceItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error)
}

// Service implements content operations.
type Service struct {
	log     *slog.Logger
	courses courseRepo
	topics  topicRepo
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, courses courseRepo, topics topicRepo) *Service {
	return &Service{
		log:     logger.With("service", "content"),
		courses: courses,
		topics:  topics,
	}
}
