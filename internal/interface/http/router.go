package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/refresh", handler.Refresh)
			authGroup.GET("/google/url", handler.GoogleAuthURL)
			authGroup.GET("/google/callback", handler.GoogleCallback)

			authorized := authGroup.Group("", authMiddleware(authSvc))
			{
				authorized.GET("/me", handler.Me)
				authorized.POST("/logout", handler.Logout)
			}
		}

		closetGroup := api.Group("/closet", authMiddleware(authSvc))
		{
			closetGroup.POST("/garments", handler.AddGarment)
			closetGroup.GET("/garments", handler.ListGarments)
			closetGroup.GET("/garments/:id", handler.GetGarment)
			closetGroup.PATCH("/garments/:id", handler.UpdateGarment)
			closetGroup.DELETE("/garments/:id", handler.DeleteGarment)
			closetGroup.GET("/garments/:id/similar", handler.SimilarGarments)
			closetGroup.GET("/profile", handler.GetProfile)
			closetGroup.PUT("/profile", handler.UpdateProfile)
			closetGroup.DELETE("/profile", handler.ResetProfile)
			closetGroup.GET("/outfits", handler.SuggestOutfits)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
