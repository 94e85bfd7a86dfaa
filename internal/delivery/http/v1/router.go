package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	CompanyUC     domain.CompanyUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *auth.Manager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	middleware.ConfigureRateLimits(
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		deps.Config.RateLimitGlobalThreshold,
		deps.Config.RateLimitAuthThreshold,
	)

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimitMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewUserHandler(v1, protected, deps.AuthUC, deps.ProfileUC)
		NewJobHandler(v1, protected, deps.JobUC, deps.ApplicationUC)
		NewCompanyHandler(v1, protected, deps.CompanyUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
