// Command server runs the spaced-repetition scheduling backend.
//
// Usage:
//
//	server
//
// Configuration comes from config.yaml (or CONFIG_PATH) and environment
// variables; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/linguahub/srs-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
