package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"homolo/adapters/excel"
	"homolo/adapters/httpapi"
	"homolo/adapters/mcpserver"
	"homolo/app"
	"homolo/internal/config"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	svc := app.NewLayerService(excel.NewDataReader(), excel.NewLayerWriter(), cfg.Defaults)
	mcpSrv := mcpserver.NewServer(svc, cfg.Defaults)
	api := httpapi.NewApp(cfg.Server, mcpSrv.Handler())

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("homolo-mcp listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
