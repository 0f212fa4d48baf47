package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a user-owned language course. Each category holds an ordered
// list of topic IDs; every referenced topic must have the matching category.
type Course struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	NativeLanguage   string
	LearningLanguage string
	// Interest is the free-text "why I'm learning" context used to steer
	// vocabulary and dialogue generation.
	Interest string
	// Level is the user's self-described proficiency (e.g. "A1", or a
	// sentence in their native language).
	Level string

	GrammarTopicIDs    []uuid.UUID
	VocabularyTopicIDs []uuid.UUID
	DialogueTopicIDs   []uuid.UUID

	// Version is incremented on every write and checked by the store's
	// compare-and-swap, so concurrent appends cannot silently drop an ID.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TopicIDs returns the topic ID collection for the given category.
// Returns nil for an invalid category.
func (c *Course) TopicIDs(category TopicCategory) []uuid.UUID {
	switch category {
	case CategoryGrammar:
		return c.GrammarTopicIDs
	case CategoryVocabulary:
		return c.VocabularyTopicIDs
	case CategoryDialogue:
		return c.DialogueTopicIDs
	}
	return nil
}

// AppendTopicID appends a topic ID to the collection for the given category.
// Appending an ID that is already present is a no-op, so a repeated attach
// leaves the collection containing the ID exactly once.
// Returns false for an invalid category.
func (c *Course) AppendTopicID(category TopicCategory, topicID uuid.UUID) bool {
	if !category.IsValid() {
		return false
	}
	for _, id := range c.TopicIDs(category) {
		if id == topicID {
			return true
		}
	}
	switch category {
	case CategoryGrammar:
		c.GrammarTopicIDs = append(c.GrammarTopicIDs, topicID)
	case CategoryVocabulary:
		c.VocabularyTopicIDs = append(c.VocabularyTopicIDs, topicID)
	case CategoryDialogue:
		c.DialogueTopicIDs = append(c.DialogueTopicIDs, topicID)
	}
	return true
}
