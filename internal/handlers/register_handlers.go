package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lancarbooks/lancar_backend/cmd/docs"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/middleware"
	"github.com/lancarbooks/lancar_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "x-api-key")
		r.Use(cors.New(corsCfg))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes, with login rate limited per client IP
	public := r.Group("/api/v1")
	registerAuthRoutes(public, cfg, services, buildLoginLimiter(cfg))

	// Setup API v1 routes behind API key and JWT auth
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// buildLoginLimiter creates the per-IP rate limit middleware for the login
// endpoint, backed by an in-memory store.
func buildLoginLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid login rate limit format, falling back to default", "value", cfg.LoginRateLimit, "error", err)
		rate = limiter.Rate{Period: time.Minute, Limit: 10}
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// API key auth runs first; requests without a key fall through to JWT auth
	v1 := r.Group("/api/v1",
		middleware.APIKeyAuth(services.APIKey),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
	registerLedgerRoutes(v1, services.Ledger)
	registerBankAccountRoutes(v1, services.BankAccount)
	registerDebtRoutes(v1, services.Debt)
	registerPartyRoutes(v1, services.Party)
	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency, services.CurrencyRate)
	registerReportingRoutes(v1, services.Reporting)
	registerSettingsRoutes(v1, services.Settings)
	registerAPIKeyRoutes(v1, services.APIKey)
	registerBackupRoutes(v1, services.Backup)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
