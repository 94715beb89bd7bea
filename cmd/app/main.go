package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "partner-trx-api/docs"
	"partner-trx-api/internal/components"
	"partner-trx-api/internal/config"
)

// @title Partner Transaction Validation Api
// @version 1.0
// @description Validation and signature-verification API for inbound partner transactions
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Println(err.Error())
		return
	}

	logger := components.SetupLogger(*cfg)

	eg, ctx := errgroup.WithContext(context.Background())

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, os.Interrupt, syscall.SIGTERM)

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("Bad configuration", slog.String("error", err.Error()))
		return
	}

	eg.Go(func() error {
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("failed to run HttpServer", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	<-sigQuit
	logger.Info("The program is exiting")

	if err := comps.Shutdown(); err != nil {
		logger.Error("Error while shutting down the components", slog.String("error", err.Error()))
	}

	if err := eg.Wait(); err != nil {
		return
	}

	logger.Info("The program is exited")
}
