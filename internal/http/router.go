package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/apex-assurance/claims-backend/internal/agent"
	"github.com/apex-assurance/claims-backend/internal/config"
	"github.com/apex-assurance/claims-backend/internal/directory"
	"github.com/apex-assurance/claims-backend/internal/http/handlers"
	"github.com/apex-assurance/claims-backend/internal/http/middleware"

	_ "github.com/apex-assurance/claims-backend/docs"
)

func Router(cfg config.Config, dir directory.Directory, assistant *agent.Agent, sessions *agent.SessionManager, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Directory:      dir,
		Agent:          assistant,
		Dispatcher:     assistant.Dispatcher,
		Sessions:       sessions,
		Validator:      validator.New(),
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat)
		api.GET("/sessions/:id/context", h.SessionContext)
		api.POST("/sessions/:id/reset", h.SessionReset)
		api.GET("/clients", h.ClientsLookup)
		api.GET("/coverage/:tier", h.CoverageTier)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.GET("/tools", h.ToolsList)
		admin.POST("/tools/:name", h.ToolDispatch)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
