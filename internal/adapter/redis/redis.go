// Package redis implements the key-value storage boundary on top of a
// Redis-compatible server. Entities are stored as JSON values under typed
// key prefixes; read-modify-write updates go through an optimistic
// WATCH/MULTI transaction so concurrent appends cannot be lost.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/linguacourse-backend/internal/config"
)

// casAttempts bounds the optimistic-transaction retry loop. Exhaustion
// surfaces as domain.ErrConflict rather than spinning forever.
const casAttempts = 16

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// Pinger exposes the connection check as a plain error so the health
// endpoint does not depend on go-redis command types.
type Pinger struct {
	rdb *goredis.Client
}

func NewPinger(rdb *goredis.Client) Pinger { return Pinger{rdb: rdb} }

func (p Pinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// GetJSON loads and decodes the JSON value at key into a fresh T.
// Returns goredis.Nil unchanged when the key is absent; callers map it
// to a domain error via mapError.
func GetJSON[T any](ctx context.Context, rdb *goredis.Client, key string) (*T, error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &v, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, rdb *goredis.Client, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return rdb.Set(ctx, key, raw, 0).Err()
}

// UpdateJSON performs an optimistic read-modify-write of the JSON value at
// key: the value is loaded under WATCH, mutated, and written back in a
// MULTI/EXEC block. If another writer touches the key in between, the
// transaction fails and the whole cycle is retried up to casAttempts times;
// after that goredis.TxFailedErr is returned (mapError turns it into
// domain.ErrConflict). mutate is responsible for bumping any version field.
func UpdateJSON[T any](ctx context.Context, rdb *goredis.Client, key string, mutate func(*T) error) (*T, error) {
	var updated *T

	txn := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		if err := mutate(&v); err != nil {
			return err
		}
		out, err := json.Marshal(&v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &v
		return nil
	}

	var err error
	for attempt := 0; attempt < casAttempts; attempt++ {
		err = rdb.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, err
}
