// Package topic implements the Topic repository on the key-value store.
// Topics live under "topic:<id>" with their items inline. Item mutations
// go through the optimistic transaction; topics are created PENDING and
// marked READY once the generation pipeline finishes populating them.
package topic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	redisstore "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

const (
	keyPrefix = "topic:"
	scanCount = 100
)

// Repo provides topic persistence backed by the key-value store.
type Repo struct {
	rdb *goredis.Client
}

// New creates a new topic repository.
func New(rdb *goredis.Client) *Repo {
	return &Repo{rdb: rdb}
}

type record struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Category    domain.TopicCategory `json:"category"`
	Content     string               `json:"content"`
	Description string               `json:"description"`
	Status      domain.TopicStatus   `json:"status"`
	Items       []domain.Item        `json:"items"`
	Version     int64                `json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func topicKey(id uuid.UUID) string { return keyPrefix + id.String() }

func toDomain(r *record) *domain.Topic {
	return &domain.Topic{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category,
		Content:     r.Content,
		Description: r.Description,
		Status:      r.Status,
		Items:       r.Items,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create persists a new topic. The category must already be validated by
// the caller; status defaults to PENDING when unset.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	now := time.Now()
	rec := record{
		ID:          t.ID,
		Title:       t.Title,
		Category:    t.Category,
		Content:     t.Content,
		Description: t.Description,
		Status:      t.Status,
		Items:       t.Items,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = domain.TopicStatusPending
	}

	if err := redisstore.SetJSON(ctx, r.rdb, topicKey(rec.ID), &rec); err != nil {
		return nil, redisstore.MapError(err, "topic", rec.ID.String())
	}

	return toDomain(&rec), nil
}

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	rec, err := redisstore.GetJSON[record](ctx, r.rdb, topicKey(id))
	if err != nil {
		return nil, redisstore.MapError(err, "topic", id.String())
	}
	return toDomain(rec), nil
}

// GetByIDs resolves a batch of topic IDs, preserving order. IDs that no
// longer resolve are skipped rather than failing the whole batch.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Topic, error) {
	topics := make([]*domain.Topic, 0, len(ids))
	for _, id := range ids {
		rec, err := redisstore.GetJSON[record](ctx, r.rdb, topicKey(id))
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				continue
			}
			return nil, redisstore.MapError(err, "topic", id.String())
		}
		topics = append(topics, toDomain(rec))
	}
	return topics, nil
}

// AppendItems appends items to the topic's collection under compare-and-swap.
// Returns domain.ErrNotFound when the topic is absent.
func (r *Repo) AppendItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	return r.mutate(ctx, id, func(rec *record) {
		rec.Items = append(rec.Items, items...)
	})
}

// ReplaceItems replaces the topic's item collection wholesale.
func (r *Repo) ReplaceItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	return r.mutate(ctx, id, func(rec *record) {
		rec.Items = items
	})
}

// MarkReady transitions the topic out of PENDING once it is fully populated.
func (r *Repo) MarkReady(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.mutate(ctx, id, func(rec *record) {
		rec.Status = domain.TopicStatusReady
	})
}

func (r *Repo) mutate(ctx context.Context, id uuid.UUID, fn func(*record)) (*domain.Topic, error) {
	rec, err := redisstore.UpdateJSON(ctx, r.rdb, topicKey(id), func(rec *record) error {
		fn(rec)
		rec.Version++
		rec.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, redisstore.MapError(err, "topic", id.String())
	}
	return toDomain(rec), nil
}

// DeleteStalePending removes PENDING topics created before the threshold.
// These are leftovers of generations that failed between creating a topic
// and populating it. Returns the number of topics removed.
func (r *Repo) DeleteStalePending(ctx context.Context, threshold time.Time) (int, error) {
	deleted := 0

	var cursor uint64
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, keyPrefix+"*", scanCount).Result()
		if err != nil {
			return deleted, redisstore.MapError(err, "topic", "stale")
		}
		for _, key := range keys {
			rec, err := redisstore.GetJSON[record](ctx, r.rdb, key)
			if err != nil {
				if errors.Is(err, goredis.Nil) {
					continue
				}
				return deleted, redisstore.MapError(err, "topic", key)
			}
			if rec.Status == domain.TopicStatusPending && rec.CreatedAt.Before(threshold) {
				if err := r.rdb.Del(ctx, key).Err(); err != nil {
					return deleted, redisstore.MapError(err, "topic", key)
				}
				deleted++
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}
