package main

import (
	"tasklist/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "tasklist/internal/adapter/db"
	httpadapter "tasklist/internal/adapter/http"
	"tasklist/internal/adapter/http/handlers"
	httpmiddleware "tasklist/internal/adapter/http/middleware"
	"tasklist/internal/app/service"
	"tasklist/internal/auth"
	"tasklist/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokens := auth.NewTokenManager(cfg.JwtSecret, cfg.JwtTTL, "tasklist")
	hasher := auth.NewPasswordHasher()

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	taskService := service.NewTaskService(taskRepository)
	userService := service.NewUserService(userRepository, tokens, hasher)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.CORSMiddleware(cfg.CorsOrigins))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, taskHandler, userHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
