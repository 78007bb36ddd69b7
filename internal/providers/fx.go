package providers

import (
	"github.com/billcraft/billcraft/internal/providers/email"
	"github.com/billcraft/billcraft/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	email.Module,
	pdf.Module,
)
