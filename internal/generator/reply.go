package generator

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/provider"
)

// openingCue stands in for the user's side of the scripted opening. The
// stored conversation starts with the assistant's seeded line, but the
// completion API rejects histories where the assistant speaks first. The
// cue is sent upstream only and never persisted.
const openingCue = "Start the conversation."

// Reply continues a dialogue topic's conversation: the stored turns plus
// the new user message become one completion request, and both the user
// message and the model's reply are appended to the topic. Returns the
// reply text.
func (s *Service) Reply(ctx context.Context, topicID uuid.UUID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.NewValidationError("message", "message is empty")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return "", err
	}
	if topic.Category != domain.CategoryDialogue {
		return "", domain.NewValidationError("topic_id", "topic is not a dialogue")
	}

	req := provider.Request{
		MaxTokens:   s.llm.ReplyMaxTokens,
		Temperature: s.llm.Temperature,
	}
	for _, item := range topic.Items {
		if item.Kind != domain.ItemKindTurn {
			continue
		}
		if item.Role == domain.RoleSystem {
			req.System = item.Text
			continue
		}
		req.Messages = append(req.Messages, provider.Message{Role: item.Role, Text: item.Text})
	}
	if len(req.Messages) > 0 && req.Messages[0].Role == domain.RoleAssistant {
		req.Messages = append([]provider.Message{{Role: domain.RoleUser, Text: openingCue}}, req.Messages...)
	}
	req.Messages = append(req.Messages, provider.Message{Role: domain.RoleUser, Text: message})

	reply, err := s.model.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)

	turns := []domain.Item{
		domain.NewChatTurn(domain.RoleUser, message),
		domain.NewChatTurn(domain.RoleAssistant, reply),
	}
	if _, err := s.topics.AppendItems(ctx, topicID, turns); err != nil {
		return "", err
	}

	return reply, nil
}
