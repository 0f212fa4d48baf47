package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/generator/prompt"
)

// generateDialogue runs the dialogue path: one scenario call produces a
// single topic; a roles call and two plain-text calls build the system
// instruction and the assistant's opening line, stored as the topic's two
// seed turns. The topic's content stays empty; the conversation lives
// entirely in the items.
func (s *Service) generateDialogue(ctx context.Context, course *domain.Course, exclude []string) ([]TopicSummary, error) {
	scenarioPrompt := prompt.DialogueScenario(course.LearningLanguage, exclude, course.Interest, course.NativeLanguage, course.Level)
	reply, err := s.complete(ctx, scenarioPrompt, s.llm.TitleMaxTokens)
	if err != nil {
		return nil, err
	}
	entry, err := decodeScenario(reply)
	if err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		Title:       entry.Title,
		Category:    domain.CategoryDialogue,
		Description: entry.Description,
		Status:      domain.TopicStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.courses.AppendTopic(ctx, course.ID, domain.CategoryDialogue, topic.ID); err != nil {
		return nil, err
	}

	rolesReply, err := s.complete(ctx, prompt.DialogueRoles(entry.Title, entry.Description, course.LearningLanguage), s.llm.TitleMaxTokens)
	if err != nil {
		return nil, err
	}
	learnerRole, assistantRole, scenario, err := decodeRoles(rolesReply)
	if err != nil {
		return nil, err
	}

	systemPrompt := prompt.DialogueSystemInstruction(entry.Title, scenario, learnerRole, assistantRole,
		course.LearningLanguage, course.NativeLanguage, course.Level)
	system, err := s.complete(ctx, systemPrompt, s.llm.LessonMaxTokens)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(system) == "" {
		return nil, fmt.Errorf("empty system instruction: %w", domain.ErrMalformedGeneration)
	}

	opening, err := s.complete(ctx, prompt.DialogueOpening(scenario, assistantRole, course.LearningLanguage, course.Level), s.llm.ReplyMaxTokens)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opening) == "" {
		return nil, fmt.Errorf("empty opening line: %w", domain.ErrMalformedGeneration)
	}

	seed := []domain.Item{
		domain.NewChatTurn(domain.RoleSystem, strings.TrimSpace(system)),
		domain.NewChatTurn(domain.RoleAssistant, strings.TrimSpace(opening)),
	}
	if _, err := s.topics.AppendItems(ctx, topic.ID, seed); err != nil {
		return nil, err
	}
	if _, err := s.topics.MarkReady(ctx, topic.ID); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "generated dialogue topic",
		slog.String("course_id", course.ID.String()),
		slog.String("topic_id", topic.ID.String()))

	return []TopicSummary{{ID: topic.ID, Title: topic.Title, Description: topic.Description}}, nil
}
