package service

import (
	"context"

	"github.com/billcraft/billcraft/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("settings.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.First(ctx, s.db)
	if err != nil {
		return domain.Settings{}, err
	}
	if settings == nil {
		return domain.Settings{}, domain.ErrNotFound
	}
	return *settings, nil
}

// Update merges the given fields into the singleton row. Unset fields keep
// their prior values, so repeating the same partial update is idempotent.
func (s *Service) Update(ctx context.Context, req domain.UpdateSettingsRequest) (domain.Settings, error) {
	current, err := s.repo.First(ctx, s.db)
	if err != nil {
		return domain.Settings{}, err
	}
	if current == nil {
		return domain.Settings{}, domain.ErrNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["your_name"] = *req.Name
	}
	if req.Email != nil {
		fields["your_email"] = *req.Email
	}
	if req.Address != nil {
		fields["your_address"] = *req.Address
	}
	if req.UPIID != nil {
		fields["upi_id"] = *req.UPIID
	}
	if req.LogoURL != nil {
		fields["logo_url"] = *req.LogoURL
	}

	if err := s.repo.Update(ctx, s.db, fields); err != nil {
		return domain.Settings{}, err
	}

	updated, err := s.repo.First(ctx, s.db)
	if err != nil {
		return domain.Settings{}, err
	}
	if updated == nil {
		return domain.Settings{}, domain.ErrNotFound
	}

	s.log.Info("settings updated", zap.Int("fields", len(fields)))
	return *updated, nil
}
