package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/generator/prompt"
	"github.com/heartmarshall/linguacourse-backend/internal/provider"
)

// GenerateTopics creates new topics of the given category for a course and
// attaches them to it. For grammar and vocabulary it proposes a batch of
// titles and writes a lesson plus a quiz for each; for dialogue it builds
// one scenario with its seed turns. Each topic is created PENDING, attached,
// populated, and only then marked READY, so a crash mid-pipeline leaves a
// recognizable orphan rather than a half-broken "finished" topic.
func (s *Service) GenerateTopics(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory) ([]TopicSummary, error) {
	if !category.IsValid() {
		return nil, domain.NewValidationError("category", fmt.Sprintf("invalid topic category %q", category))
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	exclude, err := s.existingTitles(ctx, course, category)
	if err != nil {
		return nil, err
	}

	if category == domain.CategoryDialogue {
		return s.generateDialogue(ctx, course, exclude)
	}
	return s.generateLessons(ctx, course, category, exclude)
}

// generateLessons runs the grammar/vocabulary path: one title call, then a
// lesson call and a quiz call per proposed title.
func (s *Service) generateLessons(ctx context.Context, course *domain.Course, category domain.TopicCategory, exclude []string) ([]TopicSummary, error) {
	var titlePrompt string
	switch category {
	case domain.CategoryGrammar:
		titlePrompt = prompt.GrammarTitles(course.LearningLanguage, exclude, s.gen.TopicsPerRequest, course.NativeLanguage)
	case domain.CategoryVocabulary:
		titlePrompt = prompt.VocabularyTitles(course.LearningLanguage, exclude, s.gen.TopicsPerRequest, course.Interest, course.NativeLanguage, course.Level)
	}

	reply, err := s.complete(ctx, titlePrompt, s.llm.TitleMaxTokens)
	if err != nil {
		return nil, err
	}
	entries, err := decodeTitleList(reply)
	if err != nil {
		return nil, err
	}

	summaries := make([]TopicSummary, 0, len(entries))
	for _, entry := range entries {
		summary, err := s.buildLessonTopic(ctx, course, category, entry)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	s.log.InfoContext(ctx, "generated topics",
		slog.String("course_id", course.ID.String()),
		slog.String("category", category.String()),
		slog.Int("count", len(summaries)))

	return summaries, nil
}

// buildLessonTopic writes the lesson, persists the topic, attaches it to
// the course, and populates the quiz.
func (s *Service) buildLessonTopic(ctx context.Context, course *domain.Course, category domain.TopicCategory, entry titleEntry) (TopicSummary, error) {
	lessonPrompt := prompt.LessonContent(entry.Title, entry.Description, category, course.LearningLanguage, course.NativeLanguage, course.Level)
	lesson, err := s.complete(ctx, lessonPrompt, s.llm.LessonMaxTokens)
	if err != nil {
		return TopicSummary{}, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		Title:       entry.Title,
		Category:    category,
		Content:     strings.TrimSpace(lesson),
		Description: entry.Description,
		Status:      domain.TopicStatusPending,
	})
	if err != nil {
		return TopicSummary{}, err
	}

	if _, err := s.courses.AppendTopic(ctx, course.ID, category, topic.ID); err != nil {
		return TopicSummary{}, err
	}

	quizPrompt := prompt.QuizItems(entry.Title, category, course.LearningLanguage, course.NativeLanguage, s.gen.QuizPerTopic)
	quizReply, err := s.complete(ctx, quizPrompt, s.llm.QuizMaxTokens)
	if err != nil {
		return TopicSummary{}, err
	}
	items, err := decodeQuizItems(quizReply)
	if err != nil {
		return TopicSummary{}, err
	}
	if err := topic.ValidateItems(items); err != nil {
		return TopicSummary{}, err
	}

	if _, err := s.topics.AppendItems(ctx, topic.ID, items); err != nil {
		return TopicSummary{}, err
	}
	if _, err := s.topics.MarkReady(ctx, topic.ID); err != nil {
		return TopicSummary{}, err
	}

	return TopicSummary{ID: topic.ID, Title: topic.Title, Description: topic.Description}, nil
}

// complete sends a single-turn request with the service's temperature.
func (s *Service) complete(ctx context.Context, text string, maxTokens int64) (string, error) {
	return s.model.Complete(ctx, provider.UserRequest(text, maxTokens, s.llm.Temperature))
}
