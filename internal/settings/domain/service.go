package domain

import (
	"context"
	"errors"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

// ErrNotFound means the singleton row is missing, which only happens when the
// invariant was broken outside the application lifecycle.
var ErrNotFound = errors.New("settings_not_found")
