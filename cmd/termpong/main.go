// Package main is the entry point for termpong.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/termpong/internal/game"
	"github.com/samdwyer/termpong/internal/telemetry"
	"github.com/samdwyer/termpong/internal/ui"
)

func main() {
	// .env may carry PONG_* tuning and OTEL_* exporter settings
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Nothing may be logged between Open and the end of Run.
	screen, err := ui.Open(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	g, err := game.New(screen, cfg)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
	}
}
