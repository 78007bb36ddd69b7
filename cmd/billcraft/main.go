package main

import (
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/invoice"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/migration"
	"github.com/billcraft/billcraft/internal/providers"
	"github.com/billcraft/billcraft/internal/server"
	"github.com/billcraft/billcraft/internal/settings"
	"github.com/billcraft/billcraft/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		settings.Module,
		providers.Module,
		invoice.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
