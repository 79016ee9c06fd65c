package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	apiscenario "resale_valuation/pkg/api/scenario"
	"resale_valuation/pkg/core/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Default assumptions are optional; without the file every numeric
	// the form leaves blank simply stays 0.
	defaultsPath := os.Getenv("DEFAULTS_FILE")
	if defaultsPath == "" {
		defaultsPath = "config/defaults.yaml"
	}
	defaults, err := config.Load(defaultsPath)
	if err != nil {
		logger.Warnf("No defaults loaded from %s: %v", defaultsPath, err)
	} else {
		logger.Infof("Loaded default assumptions from %s", defaultsPath)
	}

	h := apiscenario.NewHandler(logger, defaults)

	r := mux.NewRouter()
	r.HandleFunc("/api/scenario/evaluate", h.HandleEvaluate).Methods("POST", "OPTIONS")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
