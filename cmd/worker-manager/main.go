// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tribunal-workers/internal/common/camunda"
	"tribunal-workers/internal/common/config"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/observability"

	pdo "tribunal-workers/internal/workers/decision/preview-decision-outcome"
	vdn "tribunal-workers/internal/workers/decision/validate-decision-notice"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level and format
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	// --- Init Camunda Client with retry ---
	var broker *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		broker, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	if config.IsWorkerEnabled(cfg, vdn.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, vdn.TaskType)
		handler := vdn.NewHandler(
			&vdn.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
			},
			obs, log,
		)
		workers = append(workers, camunda.NewWorker(
			broker.GetClient(), vdn.TaskType, wcfg.MaxJobsActive, config.GetDuration(wcfg.Timeout), handler, zapLog,
		))
	}

	if config.IsWorkerEnabled(cfg, pdo.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, pdo.TaskType)
		handler := pdo.NewHandler(
			&pdo.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
			},
			log,
		)
		workers = append(workers, camunda.NewWorker(
			broker.GetClient(), pdo.TaskType, wcfg.MaxJobsActive, config.GetDuration(wcfg.Timeout), handler, zapLog,
		))
	}

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := broker.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		if cfg.Metrics.Enabled {
			http.Handle("/metrics", promhttp.Handler())
		}
		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		zapLog.Info("Health/Metrics server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	if err := broker.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
