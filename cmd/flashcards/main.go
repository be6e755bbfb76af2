package main

import (
	"context"
	"fmt" // For errors before the logger is up
	"os"
	"os/signal"
	"syscall"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/adapter"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/cache"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/config"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/logger"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/service"
	"github.com/anandita-3217/FlashcardApp-CLI/internal/shell"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Quiz results go to Redis only when it is configured
	recorder := service.NewNopResultRecorder()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, quiz results will not be recorded", zap.Error(err))
		} else {
			defer redisClient.Close()
			recorder = service.NewCacheResultRecorder(adapter.NewRedisCacheAdapter(redisClient), cfg.Redis.ResultTTL)
			appLogger.Info("Recording quiz results in Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	deck := service.NewDeckService(service.WithLogger(appLogger))
	sh := shell.New(deck, shell.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		Recorder: recorder,
		Prompts:  shell.ShouldPrompt(cfg.Shell.Prompts, os.Stdin.Fd()),
		Shuffle:  cfg.Quiz.Shuffle,
		Logger:   appLogger,
	})

	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		appLogger.Error("Shell stopped with error", zap.Error(err))
		return 1
	}
	return 0
}
