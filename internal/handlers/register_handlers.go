package handlers

import (
	"fmt"

	"github.com/SscSPs/loan_service/cmd/docs"
	portssvc "github.com/SscSPs/loan_service/internal/core/ports/services"
	"github.com/SscSPs/loan_service/internal/middleware"
	"github.com/SscSPs/loan_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/", getHome)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/v1")

	if cfg.RateLimit != "" {
		lim, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
		}
		v1.Use(middleware.RateLimit(lim))
	}

	registerLoanRoutes(v1, services.Loan)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
