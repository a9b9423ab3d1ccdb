package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"student-loan-estimator/configs"
	httpLayer "student-loan-estimator/http"
	"student-loan-estimator/logger"
	"student-loan-estimator/repository"
	"student-loan-estimator/service"
)

func main() {
	if err := configs.LoadEnv(); err != nil {
		logger.Warn("error loading .env file", zap.Error(err))
	}
	logger.Setup(configs.LOG_LEVEL)

	estimateRepo := repository.NewEstimateRepositoryMemory()

	var cache repository.CacheRepository
	if configs.REDIS_ENABLED {
		redisCache := repository.NewRedisCache(configs.GetRedisConfig())
		defer redisCache.Close()
		cache = redisCache
	} else {
		cache = repository.NewMockCache()
	}

	estimatorService := service.NewEstimatorService(estimateRepo, cache)
	estimateHandler := httpLayer.NewEstimateHandler(estimatorService)

	scheduleService := service.NewScheduleService(estimatorService)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	termsService := service.NewTermsService()
	termsHandler := httpLayer.NewTermsHandler(termsService)

	tipsHandler := httpLayer.NewTipsHandler()
	historyHandler := httpLayer.NewHistoryHandler(estimateRepo)

	rateLimiter := httpLayer.NewRateLimiter(
		configs.RATE_LIMIT_CAPACITY,
		time.Duration(configs.RATE_LIMIT_REFILL_SECS)*time.Second,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/estimate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(estimateHandler.Estimate),
		),
	)

	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.BuildSchedule),
		),
	)

	mux.Handle(
		"/loan/compare-terms",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termsHandler.CompareTerms),
		),
	)

	mux.Handle(
		"/loan/tips",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(tipsHandler.GetTips),
		),
	)

	mux.Handle(
		"/loan/history",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(historyHandler.RecentEstimates),
		),
	)

	server := &http.Server{
		Addr:         ":" + configs.SERVER_PORT,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("estimator API listening", zap.String("port", configs.SERVER_PORT))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
