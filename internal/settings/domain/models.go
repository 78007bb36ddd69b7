package domain

import "time"

// Settings is the singleton issuer record. Exactly one row exists at all
// times: it is seeded with empty strings at first startup and mutated in
// place, never deleted.
type Settings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:your_name" json:"yourName"`
	Email     string    `gorm:"column:your_email" json:"yourEmail"`
	Address   string    `gorm:"column:your_address;type:text" json:"yourAddress"`
	UPIID     string    `gorm:"column:upi_id" json:"upiId"`
	LogoURL   string    `gorm:"column:logo_url" json:"logoUrl"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// UpdateSettingsRequest is a partial update: nil fields keep their prior
// values. Email and address formats are not validated.
type UpdateSettingsRequest struct {
	Name    *string `json:"yourName"`
	Email   *string `json:"yourEmail"`
	Address *string `json:"yourAddress"`
	UPIID   *string `json:"upiId"`
	LogoURL *string `json:"logoUrl"`
}
