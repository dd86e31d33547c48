package main

import (
	"context"
	"log"

	"github.com/mrsameer/rag-with-gemini/internal/bootstrap"
	"github.com/mrsameer/rag-with-gemini/internal/config"
	"github.com/mrsameer/rag-with-gemini/internal/server"
	"github.com/mrsameer/rag-with-gemini/internal/tracer"
)

func main() {
	// 1. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: Starting progress relay...")
		if err := container.ProgressRelay.Run(context.Background()); err != nil {
			log.Printf("Background relay error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
