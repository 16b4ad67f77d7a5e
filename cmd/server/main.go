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

	"github.com/sirupsen/logrus"

	config "github.com/floodrisk/forms-data/go/configs"
	"github.com/floodrisk/forms-data/go/internal/application/services"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/backend"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/health"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/httpserver"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/memcache"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/redis"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.WithFields(logrus.Fields{
		"backend":      cfg.Backend.BaseURL,
		"cache_engine": cfg.Cache.Engine,
		"areas_ttl":    cfg.Cache.AreasTTL.String(),
	}).Info("Starting forms data service...")

	var hcSlice []ports.HealthChecker

	// Cache engine. An unreachable Redis degrades to the in-process engine
	// rather than stopping startup.
	var engine ports.CacheEngine
	var counters ports.RateLimitRepository
	memEngine := memcache.NewEngine()
	defer memEngine.Close()
	memCounter := memcache.NewWindowCounter()
	defer memCounter.Close()
	engine, counters = memEngine, memCounter
	if cfg.Cache.Engine == config.CacheEngineRedis {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, using in-memory cache engine")
		} else {
			defer redisClient.Close()
			engine = redis.NewEngine(redisClient)
			counters = repositories.NewRateLimitRedisRepository(redisClient)
			hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
			logger.Info("Connected to Redis successfully")
		}
	}

	// Upstream API client
	signer := backend.NewTokenSigner(cfg.Backend.ServiceSecret, cfg.Backend.ServiceName, cfg.Backend.ServiceTokenTTL)
	if signer == nil {
		logger.Warn("BACKEND_SERVICE_SECRET not set; upstream requests are unauthenticated")
	}
	client := backend.NewClient(&backend.Config{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout,
		MaxRetries: cfg.Backend.MaxRetries,
		RetryDelay: cfg.Backend.RetryDelay,
		Signer:     signer,
	}, nil, logger)

	// Health probes go out once with a short timeout.
	probeClient := backend.NewClient(&backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: 2 * time.Second,
		Signer:  signer,
	}, nil, logger)
	hcSlice = append(hcSlice, health.NewUpstreamHealthChecker(probeClient, "/health"))

	areaCache := repositories.NewAreaCache(engine, cfg.Cache.Segment, cfg.Cache.AreasTTL, logger)
	areaService := services.NewAreaService(areaCache, backend.NewAreaFetcher(client), logger)
	accountService := services.NewAccountService(backend.NewAccountClient(client), logger)

	rateLimiter := services.NewRateLimiterService(counters, &services.RateLimiterConfig{
		RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
		BurstMultiplier:   cfg.RateLimit.BurstMultiplier,
		Window:            cfg.RateLimit.Window,
		KeyPrefix:         cfg.RateLimit.KeyPrefix,
	}, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	server := httpserver.NewServer(serverConfig, logger, httpserver.ServerDeps{
		AreaService:    areaService,
		AccountService: accountService,
		HealthCheckers: hcSlice,
		RateLimiter:    rateLimiter,
		ServiceSecret:  cfg.Backend.ServiceSecret,
	})

	// Warm the area cache so the first form render does not pay for the fetch.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		lookup := areaService.GetCachedAreas(ctx)
		logger.WithFields(logrus.Fields{"source": lookup.Source.String(), "count": len(lookup.Areas)}).Info("area cache warm-up finished")
	}()

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
