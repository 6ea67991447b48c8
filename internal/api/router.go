package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/zhourui392/cursor-ddd-test/docs"
	"github.com/zhourui392/cursor-ddd-test/internal/api/handler"
	"github.com/zhourui392/cursor-ddd-test/internal/api/middleware"
	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
	"github.com/zhourui392/cursor-ddd-test/internal/core/service"
	"github.com/zhourui392/cursor-ddd-test/internal/infrastructure/config"
	"github.com/zhourui392/cursor-ddd-test/internal/infrastructure/crypto"
	"github.com/zhourui392/cursor-ddd-test/internal/infrastructure/db/memory"
	mongodb "github.com/zhourui392/cursor-ddd-test/internal/infrastructure/db/mongo"
	redisdb "github.com/zhourui392/cursor-ddd-test/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Adapters ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	permRepo := mongodb.NewPermissionRepository(db)
	hasher := crypto.NewBcryptHasher(0)

	// Without Redis the revocation store falls back to process memory, which
	// only holds for a single instance.
	var blacklist ports.TokenBlacklist
	if rdb != nil {
		blacklist = redisdb.NewTokenBlacklist(rdb)
	} else {
		log.Warn().Msg("redis not configured, using in-memory token blacklist")
		blacklist = memory.NewTokenBlacklist()
	}

	// --- Core services ---
	tokenService, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL(), blacklist, log)
	if err != nil {
		return nil, err
	}
	authService := service.NewAuthService(userRepo, roleRepo, hasher, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	roleService := service.NewRoleService(roleRepo, permRepo, log)
	permService := service.NewPermissionService(permRepo, log)
	accessService := service.NewAccessService(userRepo, roleRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, accessService)
	roleHandler := handler.NewRoleHandler(roleService)
	permHandler := handler.NewPermissionHandler(permService)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(accessService, domain.AdminRoleCode)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authenticated)

	// --- User routes ---
	users := e.Group("/api/users", authenticated)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:username", userHandler.Get, adminOnly)
	users.PUT("/:username", userHandler.Update, adminOnly)
	users.DELETE("/:username", userHandler.Delete, adminOnly)
	users.POST("/:username/roles/:code", userHandler.AssignRole, adminOnly)
	users.DELETE("/:username/roles/:code", userHandler.RevokeRole, adminOnly)
	users.GET("/:username/permissions", userHandler.Permissions, adminOnly)

	// --- Role routes ---
	roles := e.Group("/api/roles", authenticated, adminOnly)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.List)
	roles.GET("/:code", roleHandler.Get)
	roles.PUT("/:code", roleHandler.Update)
	roles.DELETE("/:code", roleHandler.Delete)
	roles.POST("/:code/permissions/:permissionCode", roleHandler.GrantPermission)
	roles.DELETE("/:code/permissions/:permissionCode", roleHandler.RevokePermission)

	// --- Permission routes ---
	perms := e.Group("/api/permissions", authenticated, adminOnly)
	perms.POST("", permHandler.Create)
	perms.GET("", permHandler.List)
	perms.GET("/:code", permHandler.Get)
	perms.PUT("/:code", permHandler.Update)
	perms.DELETE("/:code", permHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
