package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithField("error", err.Error()).Warn("No .env file loaded")
	}

	svcs := []context.Service{}

	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		svcs = append(svcs, &services.PostgresService{})
	case "redis":
		svcs = append(svcs, &services.RedisService{})
	case "memory":
		// No backing service needed
	default:
		svcs = append(svcs, &services.SqliteService{})
	}

	svcs = append(svcs,
		&services.KeyValueService{},
		&services.ContentService{},
		&services.ProgressService{},
		&services.DailyChallengeService{},
		&services.TerminalService{},
		&services.RateLimitService{},
		&services.MonitoringService{},

		&services.HttpService{},
	)

	ctx, err := context.NewCtx(svcs...)
	if err != nil {
		log.WithField("error", err.Error()).Fatal("Failed to build service context")
		return
	}

	if err := ctx.Run(); err != nil {
		log.WithField("error", err.Error()).Fatal("Service context exited")
		return
	}
}
