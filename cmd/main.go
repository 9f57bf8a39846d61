package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"

	"github.com/gowtham404/books-store-api/config"
	"github.com/gowtham404/books-store-api/db"
	"github.com/gowtham404/books-store-api/internal/auth/handler"
	"github.com/gowtham404/books-store-api/internal/auth/repository/mongodb"
	"github.com/gowtham404/books-store-api/internal/auth/service"
	"github.com/gowtham404/books-store-api/internal/book"
	"github.com/gowtham404/books-store-api/internal/jobs"
	"github.com/gowtham404/books-store-api/internal/mail"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("connect mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongodb disconnect", slog.Any("error", err))
		}
	}()
	database := client.Database(cfg.DBName)

	userRepo := mongodb.NewUserRepository(database)
	sessionRepo := mongodb.NewSessionRepository(database)
	refreshTokenRepo := mongodb.NewRefreshTokenRepository(database)
	bookRepo := book.NewMongoRepository(database)

	tokenService, err := service.NewTokenService(
		cfg.JWTAlgorithm,
		cfg.JWTAccessSecretKey,
		cfg.JWTRefreshSecretKey,
		cfg.JWTAccessExpiryMinutes,
		cfg.JWTRefreshExpiryDays,
	)
	if err != nil {
		logger.Error("init token service", slog.Any("error", err))
		os.Exit(1)
	}

	mailer, err := mail.NewMailer(cfg)
	if err != nil {
		logger.Error("init mailer", slog.Any("error", err))
		os.Exit(1)
	}
	queue := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := queue.Close(); err != nil {
			logger.Warn("queue close", slog.Any("error", err))
		}
	}()
	dispatcher := mail.NewDispatcher(mailer, queue)

	sessionManager := service.NewSessionManager(sessionRepo)
	emailService := service.NewEmailService(dispatcher, cfg)
	userService := service.NewUserService(userRepo, refreshTokenRepo, sessionManager, tokenService, emailService)
	bookService := book.NewService(bookRepo)

	app := fiber.New(fiber.Config{AppName: cfg.AppName})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.FrontendHost}))

	gate := handler.NewAuthGate(tokenService, sessionManager)
	handler.RegisterRoutes(app, handler.NewAuthHandler(userService), gate)
	book.RegisterRoutes(app, book.NewHandler(bookService), gate)

	go func() {
		logger.Info("server listening", slog.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}
