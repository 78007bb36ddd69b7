package settings

import (
	"github.com/billcraft/billcraft/internal/settings/repository"
	"github.com/billcraft/billcraft/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
