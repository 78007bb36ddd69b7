package migration

import (
	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
	settingsdomain "github.com/billcraft/billcraft/internal/settings/domain"
	"gorm.io/gorm"
)

// Run creates the two tables and seeds the singleton settings row so the
// service is usable out of the box. Idempotent: safe on every startup.
func Run(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&settingsdomain.Settings{},
		&invoicedomain.Invoice{},
	); err != nil {
		return err
	}
	return ensureSettingsRow(conn)
}

// ensureSettingsRow inserts the empty singleton on first startup. The row is
// mutated in place afterwards, never deleted.
func ensureSettingsRow(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&settingsdomain.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return conn.Create(&settingsdomain.Settings{ID: 1}).Error
}
