package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "userbase/docs" // swagger docs

	"userbase/internal/auth"
	"userbase/internal/cache"
	"userbase/internal/config"
	"userbase/internal/db"
	"userbase/internal/handler"
	"userbase/internal/repository"
	"userbase/internal/router"
	"userbase/internal/service"
)

// @title Userbase API
// @version 1.0
// @description User management API with registration, listing and JWT authentication.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.AccessTokenMinutes)*time.Minute)
	tokenStore := auth.NewTokenStore(cacheClient)

	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	router.Register(e, cfg, jwtService, userService, cacheClient, userHandler, authHandler)

	log.Printf("%s %s starting", cfg.ProjectName, cfg.Version)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
