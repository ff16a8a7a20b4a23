package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inkwell/database"
	"inkwell/internal/assist"
	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/http-api/handler"
	"inkwell/internal/http-api/middleware"
	"inkwell/internal/http-api/repository"
	"inkwell/internal/http-api/service"
	"inkwell/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	blogCache, redisClient, err := buildCache(cfg)
	if err != nil {
		zlog.Fatal("cache setup failed", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	savedRepo := repository.NewSavedPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, zlog)
	blogService := service.NewBlogService(blogRepo, likeRepo, commentRepo, savedRepo, blogCache, zlog)
	engagementService := service.NewEngagementService(blogRepo, likeRepo, savedRepo)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	profileService := service.NewProfileService(userRepo, blogRepo, followRepo, likeRepo, commentRepo, savedRepo)

	gemini := assist.NewGeminiClient(assist.GeminiConfig{
		APIKey:    cfg.GeminiAPIKey,
		BaseURL:   cfg.GeminiAPIURL,
		Model:     cfg.GeminiModel,
		RateLimit: cfg.GeminiRateLimit,
		RateBurst: cfg.GeminiRateBurst,
		Timeout:   cfg.AssistTimeout,
	})
	defer gemini.Close()
	languageTool := assist.NewLanguageToolClient(cfg.LanguageToolAPIURL, cfg.AssistTimeout)
	defer languageTool.Close()
	assistService := assist.NewService(gemini, languageTool, zlog)

	router := buildRouter(cfg, zlog, handlers{
		auth:       handler.NewAuthHandler(authService),
		blog:       handler.NewBlogHandler(blogService, engagementService),
		comment:    handler.NewCommentHandler(commentService),
		follow:     handler.NewFollowHandler(followService),
		profile:    handler.NewProfileHandler(profileService, commentService, followService),
		assist:     handler.NewAssistHandler(assistService),
		health:     handler.NewHealthHandler(userRepo),
		verifyAuth: authService,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		zlog.Info("server listening", zap.Int("port", cfg.HTTPPort), zap.String("env", cfg.GoEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}

type handlers struct {
	auth       *handler.AuthHandler
	blog       *handler.BlogHandler
	comment    *handler.CommentHandler
	follow     *handler.FollowHandler
	profile    *handler.ProfileHandler
	assist     *handler.AssistHandler
	health     *handler.HealthHandler
	verifyAuth middleware.TokenVerifier
}

func buildRouter(cfg *config.Config, zlog *zap.Logger, h handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zlog))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	h.health.RegisterRoutes(router)

	requireAuth := middleware.RequireAuth(h.verifyAuth)
	optionalAuth := middleware.OptionalAuth(h.verifyAuth)
	authLimit := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := router.Group("/api/v1")

	user := api.Group("/user")
	h.auth.RegisterRoutes(user, authLimit)
	h.follow.RegisterRoutes(user, requireAuth)
	h.profile.RegisterRoutes(user, requireAuth, optionalAuth)

	blog := api.Group("/blog", requireAuth)
	h.blog.RegisterRoutes(blog)
	h.comment.RegisterRoutes(blog)

	ai := api.Group("/ai", requireAuth)
	h.assist.RegisterRoutes(ai)

	return router
}

func buildCache(cfg *config.Config) (cache.Cache, *redis.Client, error) {
	switch cfg.CacheMode {
	case "off":
		return cache.Disabled{}, nil, nil
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return cache.NewRedis(client, cfg.CacheTTL), client, nil
	default:
		return cache.NewMemory(cfg.CacheTTL, time.Now), nil, nil
	}
}
