package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/adapters/rest"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/adapters/spotify"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/adapters/sqlite"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/services"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/worker"
)

func main() {
	// 1. Configuration. A local .env is optional; real deployments set the
	// environment directly. Crash early if required config is missing.
	_ = godotenv.Load()

	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	dbPath := os.Getenv("MAKO_DB_PATH")
	if dbPath == "" {
		dbPath = "mako.db"
	}

	workers := runtime.NumCPU()
	if raw := os.Getenv("MATCH_WORKERS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			workers = parsed
		}
	}

	// 2. Driven adapters.
	repo, err := sqlite.NewAdapter(dbPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer repo.Close()

	catalog := spotify.NewClient(context.Background(), clientID, clientSecret)

	// 3. Core service with a sharded matching pool.
	pool := worker.NewPool(workers)
	svc := services.NewReconciler(catalog, repo, pool)

	// 4. Driving adapter.
	handler := rest.NewHandler(svc)

	// 5. Server with graceful shutdown.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Mako API is running on http://localhost:%s (%d match workers)", port, workers)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
