package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Samir-codes-123/videotube-backend/internal/config"
	"github.com/Samir-codes-123/videotube-backend/internal/handlers"
	"github.com/Samir-codes-123/videotube-backend/internal/middleware"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
	"github.com/Samir-codes-123/videotube-backend/internal/routes"
	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/storage"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	logger, err := utils.NewLogger(dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Mongo
	mc, err := repository.NewMongoClient(cfg.Mongo.URI)
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	db := mc.Database(cfg.Mongo.Database)

	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// media store
	store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint)
	if err != nil {
		logger.Fatalf("s3 init: %v", err)
	}

	videoSvc := services.NewVideoService(videoRepo, store, logger)
	h := routes.Handlers{
		Videos:        handlers.NewVideoHandler(videoSvc),
		Comments:      handlers.NewCommentHandler(services.NewCommentService(commentRepo)),
		Likes:         handlers.NewLikeHandler(services.NewLikeService(likeRepo)),
		Tweets:        handlers.NewTweetHandler(services.NewTweetService(tweetRepo)),
		Playlists:     handlers.NewPlaylistHandler(services.NewPlaylistService(playlistRepo)),
		Subscriptions: handlers.NewSubscriptionHandler(services.NewSubscriptionService(subRepo)),
		Dashboard:     handlers.NewDashboardHandler(services.NewDashboardService(userRepo, videoSvc)),
		Users:         handlers.NewUserHandler(services.NewUserService(userRepo)),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: utils.ErrorHandler(logger),
	})
	routes.Register(app, h, middleware.Auth(cfg.JWT.Secret))

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting videotube backend on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown requested")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
