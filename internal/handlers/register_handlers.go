package handlers

import (
	"fmt"

	"github.com/SscSPs/fx_wallet/cmd/docs"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/SscSPs/fx_wallet/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	// Login and quote authorization share one budget of PIN attempts.
	pinLimiter, err := middleware.NewLimiter(cfg.PinRateLimit)
	if err != nil {
		return fmt.Errorf("invalid PIN_RATE_LIMIT %q: %w", cfg.PinRateLimit, err)
	}

	r.GET("/health", getHealth)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Authorizer, pinLimiter)

	setupAPIV1Routes(r, cfg, services, pinLimiter)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	pinLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, service.Account, service.Currency)
	registerTransactionRoutes(v1, service.Ledger)
	registerCurrencyRoutes(v1, service.Currency)
	registerExchangeRateRoutes(v1, service.ExchangeRate)
	registerExchangeRoutes(v1, service.Exchange, pinLimiter)
	registerFundsRoutes(v1, service.Funds)
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
