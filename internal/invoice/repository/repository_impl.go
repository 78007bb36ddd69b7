package repository

import (
	"context"

	"github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/billcraft/billcraft/pkg/db"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, invoice *domain.Invoice) error {
	err := conn.WithContext(ctx).Create(invoice).Error
	if db.IsDuplicateKeyErr(err) {
		return domain.ErrDuplicateNumber
	}
	return err
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := conn.WithContext(ctx).
		Model(&domain.Invoice{}).
		Order("created_at desc, id desc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) UpdateStatus(ctx context.Context, conn *gorm.DB, id snowflake.ID, status domain.Status) error {
	return conn.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}
