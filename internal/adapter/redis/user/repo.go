// Package user implements the User repository on the key-value store.
// Users live under "user:<id>"; the normalized display name is reserved
// atomically under "username:<name>" so two concurrent signups with the
// same name cannot both succeed.
package user

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
	keyPrefix  = "user:"
	namePrefix = "username:"
	scanCount  = 100
)

// Repo provides user persistence backed by the key-value store.
type Repo struct {
	rdb *goredis.Client
}

// New creates a new user repository.
func New(rdb *goredis.Client) *Repo {
	return &Repo{rdb: rdb}
}

type record struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func userKey(id uuid.UUID) string   { return keyPrefix + id.String() }
func nameKey(name string) string    { return namePrefix + domain.NormalizeName(name) }
func toDomain(r *record) *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create persists a new user, reserving the normalized name first.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now()
	rec := record{
		ID:           u.ID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	ok, err := r.rdb.SetNX(ctx, nameKey(u.Name), rec.ID.String(), 0).Result()
	if err != nil {
		return nil, redisstore.MapError(err, "user", u.Name)
	}
	if !ok {
		return nil, fmt.Errorf("user %q: %w", u.Name, domain.ErrAlreadyExists)
	}

	if err := redisstore.SetJSON(ctx, r.rdb, userKey(rec.ID), &rec); err != nil {
		// Release the reservation so the name is not burned by a failed write.
		_ = r.rdb.Del(ctx, nameKey(u.Name)).Err()
		return nil, redisstore.MapError(err, "user", rec.ID.String())
	}

	return toDomain(&rec), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	rec, err := redisstore.GetJSON[record](ctx, r.rdb, userKey(id))
	if err != nil {
		return nil, redisstore.MapError(err, "user", id.String())
	}
	return toDomain(rec), nil
}

// GetByName scans the user keyspace for a record whose normalized name
// matches. The storage boundary has no secondary index for reads, so this
// is a full-table scan with a single equality filter.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	want := domain.NormalizeName(name)

	var cursor uint64
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, keyPrefix+"*", scanCount).Result()
		if err != nil {
			return nil, redisstore.MapError(err, "user", name)
		}
		for _, key := range keys {
			rec, err := redisstore.GetJSON[record](ctx, r.rdb, key)
			if err != nil {
				if errors.Is(err, goredis.Nil) {
					continue // deleted between SCAN and GET
				}
				return nil, redisstore.MapError(err, "user", name)
			}
			if domain.NormalizeName(rec.Name) == want {
				return toDomain(rec), nil
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return nil, fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
}

// Update overwrites the provided fields. A rename reserves the new name
// before the write and releases the old reservation after it.
// Returns domain.ErrNotFound when the user is absent and
// domain.ErrAlreadyExists when the new name is taken.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, passwordHash *string) (*domain.User, error) {
	var oldName string

	if name != nil {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		oldName = current.Name

		if domain.NormalizeName(*name) != domain.NormalizeName(oldName) {
			ok, err := r.rdb.SetNX(ctx, nameKey(*name), id.String(), 0).Result()
			if err != nil {
				return nil, redisstore.MapError(err, "user", id.String())
			}
			if !ok {
				return nil, fmt.Errorf("user %q: %w", *name, domain.ErrAlreadyExists)
			}
		}
	}

	rec, err := redisstore.UpdateJSON(ctx, r.rdb, userKey(id), func(rec *record) error {
		if name != nil {
			rec.Name = *name
		}
		if passwordHash != nil {
			rec.PasswordHash = *passwordHash
		}
		rec.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		if name != nil && domain.NormalizeName(*name) != domain.NormalizeName(oldName) {
			_ = r.rdb.Del(ctx, nameKey(*name)).Err()
		}
		return nil, redisstore.MapError(err, "user", id.String())
	}

	if name != nil && domain.NormalizeName(*name) != domain.NormalizeName(oldName) {
		_ = r.rdb.Del(ctx, nameKey(oldName)).Err()
	}

	return toDomain(rec), nil
}
