package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Wellify-Group/wellify-business-sub000/internal/config"
	"github.com/Wellify-Group/wellify-business-sub000/internal/handler"
	"github.com/Wellify-Group/wellify-business-sub000/internal/infra"
	"github.com/Wellify-Group/wellify-business-sub000/internal/middleware"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
	"github.com/Wellify-Group/wellify-business-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store/Redis
func New(cfg *config.Config, st store.Store, rdb *redis.Client, queueCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(st)
	locationRepo := repository.NewLocationRepository(st)
	shiftRepo := repository.NewShiftRepository(st)
	orderRepo := repository.NewOrderRepository(st)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb, queueCB)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, locationRepo, cfg)
	accessSvc := service.NewAccessService(userRepo, locationRepo)
	locationSvc := service.NewLocationService(locationRepo)
	staffSvc := service.NewStaffService(userRepo)
	shiftSvc := service.NewShiftService(shiftRepo, locationRepo, dispatcher)
	orderSvc := service.NewOrderService(orderRepo, shiftRepo, locationRepo)
	syncSvc := service.NewSyncService(userRepo, locationRepo, shiftRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	terminalH := handler.NewTerminalHandler(authSvc, accessSvc)
	locationsH := handler.NewLocationsHandler(locationSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	shiftsH := handler.NewShiftsHandler(shiftSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	syncH := handler.NewSyncHandler(syncSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(cfg.DataDir, rdb, queueCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Terminal bootstrap (public — the terminal has no token yet)
	terminal := r.Group("/v1/terminal")
	{
		terminal.POST("/login", middleware.LoginRateLimiter(), terminalH.Login)
		terminal.POST("/resolve-code", middleware.LoginRateLimiter(), terminalH.ResolveCode)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/sync", syncH.Get)

		locations := v1.Group("/locations")
		{
			locations.GET("", middleware.RequireRole(model.RoleDirector, model.RoleManager), locationsH.List)
			locations.GET("/:id", middleware.RequireRole(model.RoleDirector, model.RoleManager), locationsH.Get)
			// Write operations — director only
			locations.POST("", middleware.RequireRole(model.RoleDirector), locationsH.Create)
			locations.PUT("/:id", middleware.RequireRole(model.RoleDirector), locationsH.Update)
			locations.DELETE("/:id", middleware.RequireRole(model.RoleDirector), locationsH.Delete)
		}

		staff := v1.Group("/staff", middleware.RequireRole(model.RoleDirector))
		{
			staff.POST("", staffH.Create)
			staff.GET("/:role", staffH.List)
			staff.PUT("/:role/:id", staffH.Update)
			staff.DELETE("/:role/:id", staffH.Delete)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.POST("/clock-in", middleware.RequireRole(model.RoleEmployee), shiftsH.ClockIn)
			shifts.POST("/:id/clock-out", middleware.RequireRole(model.RoleEmployee), shiftsH.ClockOut)
			shifts.GET("/active", middleware.RequireRole(model.RoleEmployee), shiftsH.Active)
			shifts.GET("", shiftsH.List)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", middleware.RequireRole(model.RoleEmployee), ordersH.Create)
			orders.GET("/shift/:shiftId", ordersH.ListByShift)
			orders.GET("/location/:locationId", middleware.RequireRole(model.RoleDirector, model.RoleManager), ordersH.ListByLocation)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
