package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mediagrab/mediagrab/internal/app/delivery"
	"github.com/mediagrab/mediagrab/internal/app/repository"
	"github.com/mediagrab/mediagrab/internal/app/usecase"
	"github.com/mediagrab/mediagrab/internal/config"
	"github.com/mediagrab/mediagrab/internal/fetcher"
	"github.com/mediagrab/mediagrab/internal/metrics"
	"github.com/mediagrab/mediagrab/internal/middleware"
	"github.com/mediagrab/mediagrab/internal/storage"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"github.com/mediagrab/mediagrab/internal/worker"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.String("base_download_dir", cfg.BaseDownloadDir),
	)

	if err := os.MkdirAll(cfg.BaseDownloadDir, 0755); err != nil {
		logger.Error("failed to create download directory", zap.Error(err))
		os.Exit(1)
	}

	recorder := metrics.CreateRecorder()
	jobRepo := repository.CreateJobRepository()
	ytdlp := fetcher.CreateYtDlp(cfg.YtDlpPath, cfg.FetchTimeout, cfg.ProgressFlush)
	pool := worker.CreatePool(cfg.MaxWorkers, jobRepo, ytdlp, recorder, cfg.BaseDownloadDir)
	scanner := storage.CreateScanner()
	jobUsecase := usecase.CreateJobUsecase(jobRepo, pool, scanner, ytdlp, recorder, cfg.BaseDownloadDir)
	jobDelivery := delivery.CreateJobDelivery(jobUsecase, cfg.BaseDownloadDir, cfg.MinFreeDiskMB)

	pool.Start()

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	router.HandleFunc("/readyz", jobDelivery.Readyz).Methods("GET")
	router.Handle("/metrics", recorder.Handler()).Methods("GET")

	router.HandleFunc("/delete", jobDelivery.Delete).Methods("POST")
	router.HandleFunc("/gallery", jobDelivery.Gallery).Methods("GET")
	router.HandleFunc("/files/{filename}", jobDelivery.ServeFile).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/download", jobDelivery.Submit).Methods("POST")
	apiRouter.HandleFunc("/status/{id}", jobDelivery.GetStatus).Methods("GET")
	apiRouter.HandleFunc("/jobs", jobDelivery.ListJobs).Methods("GET")
	apiRouter.HandleFunc("/presets", jobDelivery.Presets).Methods("GET")
	apiRouter.HandleFunc("/probe", jobDelivery.Probe).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware(recorder))
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		pool.Stop()
		logger.Info("server stopped")
	}
}
