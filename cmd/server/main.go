package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"pulse-share/internal/adapters/cache"
	"pulse-share/internal/adapters/remote"
	"pulse-share/internal/adapters/web"
	"pulse-share/internal/compose"
	"pulse-share/internal/config"
	"pulse-share/internal/usecases"
	"pulse-share/pkg/log"
)

func main() {
	cfg := config.Load()
	log.SetDefault(log.New(cfg.LogLevel, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize adapters
	shareCache, closeCache := newShareCache(ctx, cfg)
	defer closeCache()

	var generator usecases.RemoteGenerator
	if cfg.RemoteBaseURL != "" {
		generator = remote.NewClient(remote.Config{BaseURL: cfg.RemoteBaseURL})
		log.GlobalInfo("remote generator enabled", "base_url", cfg.RemoteBaseURL, "timeout_ms", cfg.RemoteTimeout.Milliseconds())
	} else {
		log.GlobalInfo("remote generator disabled, serving local templates only")
	}

	// Initialize use cases
	generateUC := usecases.NewGenerateShareUseCase(generator, compose.NewDefaultAssembler(), cfg.RemoteTimeout)
	getShareUC := usecases.NewGetShareUseCase(shareCache, generateUC, cache.NormalizedKey)

	// Initialize web handlers
	handlers := web.NewHandlers(getShareUC, generateUC, cfg.APIToken)
	rateLimiter := web.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Close()

	app := fiber.New(fiber.Config{
		AppName: "Pulse Share",
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, rateLimiter)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.GlobalError("shutdown failed", "error", err.Error())
		}
	}()

	log.GlobalInfo("starting Pulse Share", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil && !errors.Is(err, context.Canceled) {
		log.GlobalFatal("server stopped", "error", err.Error())
	}
}

// newShareCache prefers Redis when REDIS_URL is set and reachable, otherwise
// an in-process cache.
func newShareCache(ctx context.Context, cfg *config.Config) (usecases.ShareCache, func()) {
	if cfg.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		redisCache, err := cache.NewRedisCacheFromURL(pingCtx, cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			log.GlobalInfo("using redis share cache")
			return redisCache, func() { _ = redisCache.Close() }
		}
		log.GlobalWarn("redis unavailable, using memory cache", "error", err.Error())
	}

	memoryCache := cache.NewMemoryCache(cfg.CacheTTL)
	return memoryCache, func() { _ = memoryCache.Close() }
}
