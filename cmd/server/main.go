/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the settlement service. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Build the UF rate provider (static, or remote API behind a SQLite mirror)
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port           HTTP server port (default: 8080)
  -db             SQLite path for the UF rate mirror (default: rates.db,
                  ":memory:" supported)
  -indicator-url  Base URL of the indicator API (default: mindicador.cl)
  -uf             Fixed UF value; when positive, skips the remote API and the
                  mirror entirely

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the mirror database
  4. Exit

EXAMPLES:
  # Run against the public indicator API with a local mirror
  ./server -db=./data/rates.db

  # Run fully offline with a pinned UF value
  ./server -uf=38500.21

SEE ALSO:
  - api/server.go: Router configuration
  - indicators: rate providers
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/api"
	"github.com/australhr/settlement-engine/indicators"
	"github.com/australhr/settlement-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "rates.db", "SQLite path for the UF rate mirror")
	indicatorURL := flag.String("indicator-url", indicators.DefaultBaseURL, "Indicator API base URL")
	fixedUF := flag.Float64("uf", 0, "Fixed UF value (skips the indicator API when positive)")
	flag.Parse()

	// Build the rate provider
	var rates indicators.Provider
	if *fixedUF > 0 {
		rates = indicators.Static{Value: decimal.NewFromFloat(*fixedUF)}
		log.Printf("Using fixed UF value %v", *fixedUF)
	} else {
		store, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize rate mirror: %v", err)
		}
		defer store.Close()
		rates = indicators.NewMirror(indicators.NewClient(*indicatorURL), store)
	}

	// Initialize handler and router
	handler := api.NewHandler(rates)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Settlement service listening on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
