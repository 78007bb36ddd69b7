package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/billcraft/billcraft/internal/settings/domain"
	"github.com/billcraft/billcraft/internal/settings/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Settings{}))
	require.NoError(t, db.Create(&domain.Settings{ID: 1}).Error)
	return db
}

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	db := newTestDB(t)
	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db
}

func strptr(s string) *string { return &s }

func TestGet_ReturnsSeededSingleton(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", settings.Name)
	assert.Equal(t, "", settings.UPIID)
}

func TestGet_MissingSingletonIsNotFound(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Exec("DELETE FROM settings").Error)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_PartialMergeKeepsOtherFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.UpdateSettingsRequest{
		Name:  strptr("Acme"),
		Email: strptr("a@x.com"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateSettingsRequest{
		UPIID: strptr("acme@upi"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, "acme@upi", updated.UPIID)
}

func TestUpdate_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := domain.UpdateSettingsRequest{
		Name:    strptr("Acme"),
		Address: strptr("1 Rd"),
		UPIID:   strptr("acme@upi"),
	}

	first, err := svc.Update(ctx, req)
	require.NoError(t, err)
	second, err := svc.Update(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Address, second.Address)
	assert.Equal(t, first.UPIID, second.UPIID)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Name)
	assert.Equal(t, "1 Rd", stored.Address)
}

func TestUpdate_EmptyRequestIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.UpdateSettingsRequest{Name: strptr("Acme")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateSettingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
}
