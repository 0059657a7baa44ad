package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/infras/metrics"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	metrics.Register()

	if cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(cfg, helper.TargetLocal); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate local store")
		}
	}

	if cfg.Sync.Enable && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg, helper.TargetRemote); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate remote store")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
