package main

import (
	"log"

	"resumedeck-backend/internal/bootstrap"
	"resumedeck-backend/internal/shared/config"
	"resumedeck-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	err = app.Router.Run(addr)

	// Let in-flight view writes land before the process exits.
	app.ViewCounter.Flush()
	if err != nil {
		log.Fatalf("server error: %v", err)
	}
}
