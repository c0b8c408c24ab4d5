package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pinspot/pinspot_api/config"
	deps "github.com/pinspot/pinspot_api/internal/debs"
	api "github.com/pinspot/pinspot_api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	if err := deps.DB.Migrate(context.Background(), cfg.SchemaPath); err != nil {
		log.Panicln("failed to apply schema", "error", err)
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
	}

	go deps.Events.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Waiting", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown failed", "error", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
