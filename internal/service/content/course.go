package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// CreateCourse creates a course owned by the given user, with empty topic
// collections for all three categories.
func (s *Service) CreateCourse(ctx context.Context, ownerID uuid.UUID, input CreateCourseInput) (*domain.Course, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.Create(ctx, &domain.Course{
		OwnerID:          ownerID,
		Name:             input.Name,
		NativeLanguage:   input.NativeLanguage,
		LearningLanguage: input.LearningLanguage,
		Interest:         input.Interest,
		Level:            input.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateCourse: %w", err)
	}

	s.log.InfoContext(ctx, "course created",
		slog.String("course_id", course.ID.String()),
		slog.String("owner_id", ownerID.String()))

	return course, nil
}

// GetCourse returns a course for its owner. A course owned by someone else
// is reported as absent, so course IDs cannot be probed across users.
func (s *Service) GetCourse(ctx context.Context, courseID, requesterID uuid.UUID) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != requesterID {
		return nil, fmt.Errorf("course %s: %w", courseID, domain.ErrNotFound)
	}
	return course, nil
}

// ListCourses returns all courses owned by the user, empty slice when none.
func (s *Service) ListCourses(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error) {
	return s.courses.ListByOwner(ctx, ownerID)
}

// AttachTopicToCourse appends a topic to the course collection matching
// the topic's category. Both must exist; attaching an already-attached
// topic is a no-op, so the operation is safe to repeat.
func (s *Service) AttachTopicToCourse(ctx context.Context, courseID, topicID uuid.UUID) (*domain.Course, error) {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("content.AttachTopicToCourse get topic: %w", err)
	}

	course, err := s.courses.AppendTopic(ctx, courseID, topic.Category, topicID)
	if err != nil {
		return nil, fmt.Errorf("content.AttachTopicToCourse: %w", err)
	}

	s.log.InfoContext(ctx, "topic attached",
		slog.String("course_id", courseID.String()),
		slog.String("topic_id", topicID.String()),
		slog.String("category", topic.Category.String()))

	return course, nil
}

// CourseTopics resolves the course's topics in one category, in attach order.
func (s *Service) CourseTopics(ctx context.Context, courseID, requesterID uuid.UUID, category domain.TopicCategory) ([]*domain.Topic, error) {
	if !category.IsValid() {
		return nil, domain.NewValidationError("category", fmt.Sprintf("invalid topic category %q", category))
	}

	course, err := s.GetCourse(ctx, courseID, requesterID)
	if err != nil {
		return nil, err
	}

	return s.topics.GetByIDs(ctx, course.TopicIDs(category))
}
