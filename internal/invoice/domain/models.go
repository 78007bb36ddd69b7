package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the delivery outcome recorded on a ledger row.
type Status string

const (
	// StatusPreviewed marks invoices returned to the caller as raw PDF bytes
	// without any delivery attempt.
	StatusPreviewed Status = "previewed"
	// StatusSent marks invoices persisted on the email path. The row is
	// written before dispatch; ledger and delivery are not transactional.
	StatusSent Status = "sent"
	// StatusDeliveryFailed amends a sent row whose delivery attempt failed.
	// The invoice is recorded but never reached the client.
	StatusDeliveryFailed Status = "delivery_failed"
)

// Invoice is one ledger row, written once per successful PDF generation.
// Rows are never deleted; the only permitted mutation is the
// delivery-failure status amendment.
type Invoice struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	Number        string       `gorm:"column:invoice_number;not null;uniqueIndex" json:"invoiceNumber"`
	ClientName    string       `gorm:"column:client_name" json:"clientName"`
	ClientEmail   string       `gorm:"column:client_email" json:"clientEmail"`
	ClientAddress string       `gorm:"column:client_address;type:text" json:"clientAddress"`
	Date          time.Time    `gorm:"column:invoice_date" json:"invoiceDate"`
	Total         float64      `gorm:"column:total_amount;not null" json:"totalAmount"`
	Status        Status       `gorm:"column:status;not null" json:"status"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// GenerateInvoiceRequest is the transient submission payload. It is not
// persisted as submitted; only the ledger projection of it is. Total is
// caller-supplied and trusted, never recomputed from items.
type GenerateInvoiceRequest struct {
	Number string     `json:"invoiceNumber"`
	Date   string     `json:"date"`
	Client Client     `json:"client"`
	Items  []LineItem `json:"items"`
	Total  float64    `json:"total"`
	Note   string     `json:"note"`
}

// GenerateInvoiceResult carries the persisted row and the PDF bytes. PDF is
// returned to the caller directly in preview mode.
type GenerateInvoiceResult struct {
	Invoice Invoice
	PDF     []byte
}
