// Package generator runs the content-generation pipeline: render a prompt,
// make a blocking completion call, parse the reply as strict JSON, and
// persist the resulting topics and items. Calls are fully sequential and
// never retried; a failure aborts the remaining steps and leaves any
// already-created topics in PENDING status for the cleanup job.
package generator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/config"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/provider"
)

type completer interface {
	Complete(ctx context.Context, req provider.Request) (string, error)
}

type courseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	AppendTopic(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error)
}

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Topic, error)
	AppendItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error)
	MarkReady(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
}

// Service orchestrates topic generation for a course.
type Service struct {
	log     *slog.Logger
	llm     config.LLMConfig
	gen     config.GenerationConfig
	courses courseRepo
	topics  topicRepo
	model   completer
}

// NewService creates a new generation service.
func NewService(log *slog.Logger, llm config.LLMConfig, gen config.GenerationConfig, courses courseRepo, topics topicRepo, model completer) *Service {
	return &Service{
		log:     log.With("service", "generator"),
		llm:     llm,
		gen:     gen,
		courses: courses,
		topics:  topics,
		model:   model,
	}
}

// existingTitles returns the titles of the course's topics in the given
// category, used to steer the title prompt away from repeats.
func (s *Service) existingTitles(ctx context.Context, course *domain.Course, category domain.TopicCategory) ([]string, error) {
	ids := course.TopicIDs(category)
	if len(ids) == 0 {
		return nil, nil
	}
	topics, err := s.topics.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(topics))
	for _, t := range topics {
		titles = append(titles, t.Title)
	}
	return titles, nil
}
