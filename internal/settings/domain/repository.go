package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	First(ctx context.Context, db *gorm.DB) (*Settings, error)
	Update(ctx context.Context, db *gorm.DB, fields map[string]any) error
}
