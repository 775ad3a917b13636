package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/skolbok/internal/app"
	"github.com/shrimpsizemoose/skolbok/internal/handlers"
)

func main() {
	service, err := app.NewService("config.toml")
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	mux := handlers.NewRouter(service)

	mux.Handle("/uploads/", http.StripPrefix(
		"/uploads/",
		http.FileServer(http.Dir(service.Config.Server.UploadsDir)),
	))
	if service.Config.Server.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(service.Config.Server.StaticDir)))
	}

	mux.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting skolbok server on %s", service.Config.Server.Port)
	logger.Debug.Printf("Storage DSN: %s", service.Config.Storage.DSN)
	if err := http.ListenAndServe(service.Config.Server.Port, mux); err != nil {
		logger.Error.Fatalf("Skolbok server failed: %v", err)
	}
}
