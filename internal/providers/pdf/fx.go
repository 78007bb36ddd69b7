package pdf

import (
	"github.com/billcraft/billcraft/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.pdf",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) Provider {
	return NewChromium(Config{
		ExecPath: cfg.PDF.ExecPath,
		Timeout:  cfg.PDF.Timeout,
	})
}
