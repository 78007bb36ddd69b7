package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invoice{}))
	return db
}

func newInvoice(node *snowflake.Node, number string, createdAt time.Time) *domain.Invoice {
	return &domain.Invoice{
		ID:         node.Generate(),
		Number:     number,
		ClientName: "Widget Co",
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Total:      10,
		Status:     domain.StatusSent,
		CreatedAt:  createdAt,
	}
}

func TestInsert_DuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Insert(ctx, db, newInvoice(node, "INV-001", now)))

	err = repo.Insert(ctx, db, newInvoice(node, "INV-001", now))
	assert.ErrorIs(t, err, domain.ErrDuplicateNumber)

	invoices, err := repo.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Insert(ctx, db, newInvoice(node, "INV-001", base)))
	require.NoError(t, repo.Insert(ctx, db, newInvoice(node, "INV-002", base.Add(time.Minute))))
	require.NoError(t, repo.Insert(ctx, db, newInvoice(node, "INV-003", base.Add(2*time.Minute))))

	invoices, err := repo.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "INV-003", invoices[0].Number)
	assert.Equal(t, "INV-002", invoices[1].Number)
	assert.Equal(t, "INV-001", invoices[2].Number)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	ctx := context.Background()

	inv := newInvoice(node, "INV-001", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, db, inv))

	require.NoError(t, repo.UpdateStatus(ctx, db, inv.ID, domain.StatusDeliveryFailed))

	invoices, err := repo.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, domain.StatusDeliveryFailed, invoices[0].Status)
}
