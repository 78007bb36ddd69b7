package render

import "time"

// Renderer turns a fully resolved invoice view into a standalone HTML
// document ready for PDF export.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

type RenderInput struct {
	Issuer IssuerView
	Client ClientView
	Number string
	Date   time.Time
	Items  []LineItemView
	Total  float64
	Note   string
}

// IssuerView mirrors the singleton settings row. Missing fields render as
// empty strings, not omitted blocks.
type IssuerView struct {
	Name    string
	Email   string
	Address string
	UPIID   string
	LogoURL string
}

type ClientView struct {
	Name    string
	Email   string
	Address string
}

type LineItemView struct {
	Name     string
	Quantity float64
	Price    float64
	Amount   float64
}
