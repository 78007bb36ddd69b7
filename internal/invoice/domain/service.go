package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Generate runs the full workflow: load settings, render HTML, export
	// PDF, persist the ledger row, and when sendEmail is set, deliver the
	// PDF to the client. Failures abort without retry.
	Generate(ctx context.Context, req GenerateInvoiceRequest, sendEmail bool) (GenerateInvoiceResult, error)
	// List returns every ledger row, newest first, unbounded.
	List(ctx context.Context) ([]Invoice, error)
}

var (
	ErrInvalidNumber      = errors.New("invalid_invoice_number")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrInvalidPrice       = errors.New("invalid_price")
	ErrInvalidTotal       = errors.New("invalid_total")
	ErrInvalidClientEmail = errors.New("invalid_client_email")

	// ErrDuplicateNumber surfaces the storage-layer uniqueness constraint on
	// invoice_number. Concurrent submissions of the same number race; the
	// loser receives this error.
	ErrDuplicateNumber = errors.New("duplicate_invoice_number")
	// ErrRender covers template and PDF engine failures. The ledger is not
	// written when it occurs.
	ErrRender = errors.New("render_failed")
	// ErrDelivery means the mail relay failed after the ledger row was
	// persisted: recorded but not delivered.
	ErrDelivery = errors.New("delivery_failed")
)
