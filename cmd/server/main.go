package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"purple-insta/internal/application/services"
	"purple-insta/internal/config"
	deliveryhttp "purple-insta/internal/delivery/http"
	"purple-insta/internal/infrastructure"
	"purple-insta/internal/infrastructure/civic"
	"purple-insta/internal/infrastructure/db"
	"purple-insta/internal/util"
)

const (
	rateLimitRequests = 100 // requests per second, process-wide
	rateLimitBurst    = 200
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	util.InitLogger(cfg.LogLevel)
	defer util.Logger.Sync()

	gdb, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		util.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	userRepo := db.NewUserRepository(gdb)
	postRepo := db.NewPostRepository(gdb)
	commentRepo := db.NewCommentRepository(gdb)

	tokenService := infrastructure.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateMax)
	cache := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cache.Close()
	mailService := infrastructure.NewMailService(cfg.EmailAPIKey, cfg.EmailSender)
	civicClient := civic.NewClient(cfg.CivicAPIBase, cfg.CivicAPIKey)

	userService := services.NewUserService(userRepo, tokenService, loginLimiter)
	feedService := services.NewFeedService(postRepo, commentRepo)
	quizService := services.NewQuizService()
	civicService := services.NewCivicService(userRepo, civicClient, cache, mailService)

	handler := deliveryhttp.NewHandler(userService, feedService, quizService, civicService, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(deliveryhttp.RateLimit(rate.NewLimiter(rate.Limit(rateLimitRequests), rateLimitBurst)))

	deliveryhttp.RegisterRoutes(e, handler, deliveryhttp.RequireUser(tokenService, userRepo))

	util.Logger.Info("server starting", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		util.Logger.Fatal("server stopped", zap.Error(err))
	}
}
