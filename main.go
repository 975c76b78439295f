package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	config := MustLoadConfig()
	registry := NewRegistry()
	router := NewRouter(registry)
	hub := NewHub(registry, router)

	cleanupTicker := time.NewTicker(config.CleanupInterval)
	defer cleanupTicker.Stop()
	go func() {
		for range cleanupTicker.C {
			if cleaned := registry.CleanupInactive(config.InactiveRoomTimeout); cleaned > 0 {
				LogCleanedInactiveRooms(cleaned)
			}
		}
	}()

	server := &http.Server{
		Addr:    ":" + config.Port,
		Handler: NewHTTPServer(hub, registry, config),
	}
	go func() {
		LogStartedServer(config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			LogServerError(err)
		}
	}()

	<-ctx.Done()
	LogShuttingDown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
