package redis

import (
	"context"
	"errors"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes", nil, nil},
		{"missing key", goredis.Nil, domain.ErrNotFound},
		{"tx failed", goredis.TxFailedErr, domain.ErrConflict},
		{"deadline passes through", context.DeadlineExceeded, context.DeadlineExceeded},
		{"canceled passes through", context.Canceled, context.Canceled},
		{"validation passes through", domain.NewValidationError("x", "y"), domain.ErrValidation},
		{"already exists passes through", domain.ErrAlreadyExists, domain.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.in, "user", "abc")
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapped %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := MapError(cause, "course", "c1")
	if !errors.Is(got, cause) {
		t.Error("expected cause to stay wrapped")
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("unknown error must not map to ErrNotFound")
	}
}
