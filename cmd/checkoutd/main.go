package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hostedpay/payments-go/checkout"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	cfg := checkout.DefaultConfig()
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if os.Getenv("BRAND_DETECTION") == "true" {
		cfg.BrandDetection = true
	}

	app := checkout.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	app.Shutdown()
}
