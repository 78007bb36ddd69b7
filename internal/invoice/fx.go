package invoice

import (
	"github.com/billcraft/billcraft/internal/invoice/render"
	"github.com/billcraft/billcraft/internal/invoice/repository"
	"github.com/billcraft/billcraft/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
