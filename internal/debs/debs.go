package deps

import (
	"log"

	"github.com/pinspot/pinspot_api/config"
	"github.com/pinspot/pinspot_api/internal/db"
	"github.com/pinspot/pinspot_api/internal/events"
	"github.com/pinspot/pinspot_api/internal/moderation"
	"github.com/pinspot/pinspot_api/internal/store"
	"go.uber.org/zap"
)

type Dependencies struct {
	DB         *db.DB
	Store      *store.Store
	Moderation *moderation.Service
	Events     *events.Hub
	Log        *zap.SugaredLogger
}

func New(cfg *config.Config) *Dependencies {
	logger := newLogger(cfg)
	zap.ReplaceGlobals(logger.Desugar())

	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	st := store.New(database)
	hub := events.NewHub(logger)
	mod := moderation.New(st, st, st, logger,
		moderation.WithFlagThreshold(cfg.ReportFlagThreshold),
		moderation.WithPublisher(hub),
	)

	deps := Dependencies{
		DB:         database,
		Store:      st,
		Moderation: mod,
		Events:     hub,
		Log:        logger,
	}
	return &deps
}

func newLogger(cfg *config.Config) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Panicln("failed to build logger", "error", err)
	}
	return logger.Sugar()
}
