package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a unit of learning content: a grammar point, a vocabulary set,
// or a dialogue scenario. Category is fixed at creation.
type Topic struct {
	ID       uuid.UUID
	Title    string
	Category TopicCategory
	// Content is the markdown lesson body in the target language.
	// Dialogue topics keep it empty; their content lives in the items.
	Content     string
	Description string
	Status      TopicStatus
	Items       []Item

	// Version is incremented on every write; see Course.Version.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReady reports whether the generation pipeline finished populating the topic.
func (t *Topic) IsReady() bool { return t.Status == TopicStatusReady }

// Item is a topic's child record: a quiz question for grammar/vocabulary
// topics, or a chat turn for dialogue topics. Items have no identity of
// their own and are stored inline with their topic.
type Item struct {
	Kind ItemKind `json:"kind"`

	// Quiz fields. Options always holds four entries with the correct
	// answer at index 0; the UI shuffles for display.
	Question    string   `json:"question,omitempty"`
	Options     []string `json:"options,omitempty"`
	Explanation string   `json:"explanation,omitempty"`

	// Turn fields.
	Role ChatRole `json:"role,omitempty"`
	Text string   `json:"text,omitempty"`
}

// NewQuizItem builds a quiz item. The correct option must be first.
func NewQuizItem(question string, options []string, explanation string) Item {
	return Item{
		Kind:        ItemKindQuiz,
		Question:    question,
		Options:     options,
		Explanation: explanation,
	}
}

// NewChatTurn builds a dialogue turn item.
func NewChatTurn(role ChatRole, text string) Item {
	return Item{Kind: ItemKindTurn, Role: role, Text: text}
}

// ItemKindFor returns the item kind a topic of the given category carries.
func ItemKindFor(category TopicCategory) ItemKind {
	if category == CategoryDialogue {
		return ItemKindTurn
	}
	return ItemKindQuiz
}

// ValidateItems checks that every item matches the kind the topic's
// category requires and that quiz items are structurally complete.
func (t *Topic) ValidateItems(items []Item) error {
	want := ItemKindFor(t.Category)
	for _, item := range items {
		if item.Kind != want {
			return NewValidationError("items", "item kind does not match topic category")
		}
		switch item.Kind {
		case ItemKindQuiz:
			if item.Question == "" {
				return NewValidationError("items", "quiz question is empty")
			}
			if len(item.Options) != 4 {
				return NewValidationError("items", "quiz item must have exactly 4 options")
			}
		case ItemKindTurn:
			if !item.Role.IsValid() {
				return NewValidationError("items", "invalid chat role")
			}
			if item.Text == "" {
				return NewValidationError("items", "chat turn text is empty")
			}
		}
	}
	return nil
}
