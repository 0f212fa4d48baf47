package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// MapError converts go-redis errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped and pass through.
func MapError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// missing key → domain.ErrNotFound
	if errors.Is(err, goredis.Nil) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// exhausted optimistic transaction → domain.ErrConflict
	if errors.Is(err, goredis.TxFailedErr) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
	}

	// validation/domain errors from mutate callbacks pass through
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
