package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/api/handler"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/api/middleware"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/service"
	mongodb "github.com/lutfi-tyo14/blog-gunungagung/internal/infrastructure/db/mongo"
	redisdb "github.com/lutfi-tyo14/blog-gunungagung/internal/infrastructure/db/redis"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/pkg/config"
	"github.com/lutfi-tyo14/blog-gunungagung/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gunungagung"))

	// --- Dependencies ---
	log := logger.Get()

	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tokenStore := redisdb.NewResetTokenStore(rdb, cfg.ResetTokenTTL)

	authService := service.NewAuthService(profileRepo, tokenStore, cfg.JWTSecret, cfg.JWTTTL, log)
	postService := service.NewPostService(postRepo, commentRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)
	profileService := service.NewProfileService(profileRepo, log)
	adminService := service.NewAdminService(profileRepo, authService, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService, commentService)
	profileHandler := handler.NewProfileHandler(profileService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes (no session required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Session routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/posts", postHandler.Create)
	v1.GET("/posts", postHandler.ListAll) // staff only, enforced by policy
	v1.GET("/posts/mine", postHandler.ListMine)
	v1.GET("/posts/:id", postHandler.Get)
	v1.PUT("/posts/:id", postHandler.Update)
	v1.DELETE("/posts/:id", postHandler.Delete)
	v1.POST("/posts/:id/comments", postHandler.CreateComment)

	v1.GET("/me", profileHandler.Get)
	v1.PUT("/me", profileHandler.Update)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))
	admin.GET("/profiles", adminHandler.ListProfiles)
	admin.PUT("/profiles/:id/role", adminHandler.ChangeRole)
	admin.POST("/password-reset", adminHandler.TriggerPasswordReset)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
