package service

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/billcraft/billcraft/internal/invoice/render"
	"github.com/billcraft/billcraft/internal/providers/email"
	"github.com/billcraft/billcraft/internal/providers/pdf"
	settingsdomain "github.com/billcraft/billcraft/internal/settings/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Settings settingsdomain.Service
	Renderer render.Renderer
	PDF      pdf.Provider
	Mailer   email.Provider
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	settings settingsdomain.Service
	renderer render.Renderer
	pdf      pdf.Provider
	mailer   email.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		settings: p.Settings,
		renderer: p.Renderer,
		pdf:      p.PDF,
		mailer:   p.Mailer,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

// Generate runs the linear workflow: settings loaded, HTML rendered, PDF
// exported, ledger row persisted, then an optional single delivery attempt.
// The ledger write and the delivery are not transactional: a delivery
// failure leaves the row in place, amended to delivery_failed.
func (s *Service) Generate(ctx context.Context, req domain.GenerateInvoiceRequest, sendEmail bool) (domain.GenerateInvoiceResult, error) {
	date, err := validate(req, sendEmail)
	if err != nil {
		return domain.GenerateInvoiceResult{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.GenerateInvoiceResult{}, err
	}

	html, err := s.renderer.RenderHTML(buildRenderInput(req, settings, date))
	if err != nil {
		return domain.GenerateInvoiceResult{}, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	pdfBytes, err := s.pdf.Export(ctx, html)
	if err != nil {
		return domain.GenerateInvoiceResult{}, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	status := domain.StatusPreviewed
	if sendEmail {
		status = domain.StatusSent
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		ID:            s.genID.Generate(),
		Number:        strings.TrimSpace(req.Number),
		ClientName:    strings.TrimSpace(req.Client.Name),
		ClientEmail:   strings.TrimSpace(req.Client.Email),
		ClientAddress: req.Client.Address,
		Date:          date,
		Total:         req.Total,
		Status:        status,
		CreatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.GenerateInvoiceResult{}, err
	}

	if sendEmail {
		if err := s.deliver(ctx, invoice, settings, pdfBytes); err != nil {
			if uerr := s.repo.UpdateStatus(ctx, s.db, invoice.ID, domain.StatusDeliveryFailed); uerr != nil {
				s.log.Error("mark delivery failure",
					zap.String("invoice_number", invoice.Number),
					zap.Error(uerr),
				)
			}
			invoice.Status = domain.StatusDeliveryFailed
			return domain.GenerateInvoiceResult{Invoice: invoice, PDF: pdfBytes},
				fmt.Errorf("%w: %v", domain.ErrDelivery, err)
		}
	}

	s.log.Info("invoice generated",
		zap.String("invoice_number", invoice.Number),
		zap.String("status", string(invoice.Status)),
		zap.Bool("send_email", sendEmail),
	)
	return domain.GenerateInvoiceResult{Invoice: invoice, PDF: pdfBytes}, nil
}

func (s *Service) deliver(ctx context.Context, invoice domain.Invoice, settings settingsdomain.Settings, pdfBytes []byte) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please find your invoice attached.</p><p>Thank you!</p>",
		template.HTMLEscapeString(invoice.ClientName),
	)
	return s.mailer.Send(ctx, email.Message{
		To:       []string{invoice.ClientEmail},
		Subject:  fmt.Sprintf("Invoice #%s from %s", invoice.Number, settings.Name),
		HTMLBody: body,
		Attachments: []email.Attachment{{
			Name:        fmt.Sprintf("Invoice-%s.pdf", invoice.Number),
			ContentType: "application/pdf",
			Data:        pdfBytes,
		}},
	})
}

func validate(req domain.GenerateInvoiceRequest, sendEmail bool) (time.Time, error) {
	if strings.TrimSpace(req.Number) == "" {
		return time.Time{}, domain.ErrInvalidNumber
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	if req.Total < 0 {
		return time.Time{}, domain.ErrInvalidTotal
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return time.Time{}, domain.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return time.Time{}, domain.ErrInvalidPrice
		}
	}
	if sendEmail {
		clientEmail := strings.TrimSpace(req.Client.Email)
		if clientEmail == "" || !strings.Contains(clientEmail, "@") {
			return time.Time{}, domain.ErrInvalidClientEmail
		}
	}
	return date, nil
}

func buildRenderInput(req domain.GenerateInvoiceRequest, settings settingsdomain.Settings, date time.Time) render.RenderInput {
	items := make([]render.LineItemView, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, render.LineItemView{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   item.Quantity * item.Price,
		})
	}
	return render.RenderInput{
		Issuer: render.IssuerView{
			Name:    settings.Name,
			Email:   settings.Email,
			Address: settings.Address,
			UPIID:   settings.UPIID,
			LogoURL: settings.LogoURL,
		},
		Client: render.ClientView{
			Name:    req.Client.Name,
			Email:   req.Client.Email,
			Address: req.Client.Address,
		},
		Number: strings.TrimSpace(req.Number),
		Date:   date,
		Items:  items,
		Total:  req.Total,
		Note:   req.Note,
	}
}
