// Package course implements the Course repository on the key-value store.
// Courses live under "course:<id>". The attach-topic update is a
// read-modify-write guarded by the store's optimistic transaction, with a
// version field bumped on every write.
package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	redisstore "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

const (
	keyPrefix = "course:"
	scanCount = 100
)

// Repo provides course persistence backed by the key-value store.
type Repo struct {
	rdb *goredis.Client
}

// New creates a new course repository.
func New(rdb *goredis.Client) *Repo {
	return &Repo{rdb: rdb}
}

type record struct {
	ID               uuid.UUID   `json:"id"`
	OwnerID          uuid.UUID   `json:"owner_id"`
	Name             string      `json:"name"`
	NativeLanguage   string      `json:"native_language"`
	LearningLanguage string      `json:"learning_language"`
	Interest         string      `json:"interest"`
	Level            string      `json:"level"`
	GrammarTopics    []uuid.UUID `json:"grammar_topics"`
	VocabularyTopics []uuid.UUID `json:"vocabulary_topics"`
	DialogueTopics   []uuid.UUID `json:"dialogue_topics"`
	Version          int64       `json:"version"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func courseKey(id uuid.UUID) string { return keyPrefix + id.String() }

func toDomain(r *record) *domain.Course {
	return &domain.Course{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Name:               r.Name,
		NativeLanguage:     r.NativeLanguage,
		LearningLanguage:   r.LearningLanguage,
		Interest:           r.Interest,
		Level:              r.Level,
		GrammarTopicIDs:    r.GrammarTopics,
		VocabularyTopicIDs: r.VocabularyTopics,
		DialogueTopicIDs:   r.DialogueTopics,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Create persists a new course with empty topic collections.
func (r *Repo) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	now := time.Now()
	rec := record{
		ID:               c.ID,
		OwnerID:          c.OwnerID,
		Name:             c.Name,
		NativeLanguage:   c.NativeLanguage,
		LearningLanguage: c.LearningLanguage,
		Interest:         c.Interest,
		Level:            c.Level,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if err := redisstore.SetJSON(ctx, r.rdb, courseKey(rec.ID), &rec); err != nil {
		return nil, redisstore.MapError(err, "course", rec.ID.String())
	}

	return toDomain(&rec), nil
}

// GetByID returns a course by primary key.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	rec, err := redisstore.GetJSON[record](ctx, r.rdb, courseKey(id))
	if err != nil {
		return nil, redisstore.MapError(err, "course", id.String())
	}
	return toDomain(rec), nil
}

// ListByOwner scans the course keyspace and returns the owner's courses.
// Returns an empty slice (not nil) when the owner has none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error) {
	courses := []*domain.Course{}

	var cursor uint64
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, keyPrefix+"*", scanCount).Result()
		if err != nil {
			return nil, redisstore.MapError(err, "course", ownerID.String())
		}
		for _, key := range keys {
			rec, err := redisstore.GetJSON[record](ctx, r.rdb, key)
			if err != nil {
				if errors.Is(err, goredis.Nil) {
					continue
				}
				return nil, redisstore.MapError(err, "course", ownerID.String())
			}
			if rec.OwnerID == ownerID {
				courses = append(courses, toDomain(rec))
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return courses, nil
}

// AppendTopic appends a topic ID to the course's collection for the given
// category under compare-and-swap, so concurrent generation requests for
// the same course cannot drop an attachment. Appending an ID that is
// already present leaves the collection unchanged.
// Returns domain.ErrNotFound when the course is absent and
// domain.ErrConflict when the optimistic transaction keeps losing.
func (r *Repo) AppendTopic(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error) {
	rec, err := redisstore.UpdateJSON(ctx, r.rdb, courseKey(courseID), func(rec *record) error {
		ids := rec.topicIDs(category)
		if ids == nil && !category.IsValid() {
			return domain.NewValidationError("category", fmt.Sprintf("invalid topic category %q", category))
		}
		for _, id := range ids {
			if id == topicID {
				return nil // already attached
			}
		}
		rec.setTopicIDs(category, append(ids, topicID))
		rec.Version++
		rec.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, redisstore.MapError(err, "course", courseID.String())
	}
	return toDomain(rec), nil
}

func (r *record) topicIDs(category domain.TopicCategory) []uuid.UUID {
	switch category {
	case domain.CategoryGrammar:
		return r.GrammarTopics
	case domain.CategoryVocabulary:
		return r.VocabularyTopics
	case domain.CategoryDialogue:
		return r.DialogueTopics
	}
	return nil
}

func (r *record) setTopicIDs(category domain.TopicCategory, ids []uuid.UUID) {
	switch category {
	case domain.CategoryGrammar:
		r.GrammarTopics = ids
	case domain.CategoryVocabulary:
		r.VocabularyTopics = ids
	case domain.CategoryDialogue:
		r.DialogueTopics = ids
	}
}
