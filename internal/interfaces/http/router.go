package http

import (
	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
	"github.com/orris-inc/socialdash/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	r := c.engine

	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.RequestLogger(c.log))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	r.GET("/health", c.dashboardHandler.HealthCheck)
	r.GET("/metrics", metrics.Handler())

	// Redirect URI advertised in authorization URLs.
	r.GET(c.cfg.Simulation.CallbackPath, c.rateLimiter.Limit(), c.oauthHandler.Redirect)

	api := r.Group("/api")
	{
		api.GET("/platforms", c.oauthHandler.ListPlatforms)
		api.GET("/platforms/:platform", c.oauthHandler.GetPlatform)

		oauthGroup := api.Group("/oauth")
		{
			oauthGroup.GET("/pending", c.oauthHandler.Pending)
			oauthGroup.POST("/:platform/initiate", c.rateLimiter.Limit(), c.oauthHandler.Initiate)
			oauthGroup.POST("/:platform/callback", c.rateLimiter.Limit(), c.oauthHandler.Callback)
		}

		accounts := api.Group("/accounts")
		{
			accounts.GET("", c.oauthHandler.ListAccounts)
			accounts.GET("/:platform", c.oauthHandler.GetAccount)
			accounts.DELETE("/:platform", c.oauthHandler.Disconnect)
			accounts.POST("/:platform/refresh", c.oauthHandler.Refresh)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", c.postHandler.ListPosts)
			posts.POST("", c.postHandler.CreatePost)
			posts.GET("/:id", c.postHandler.GetPost)
			posts.PATCH("/:id", c.postHandler.UpdatePost)
			posts.DELETE("/:id", c.postHandler.DeletePost)
		}

		media := api.Group("/media")
		{
			media.GET("", c.mediaHandler.ListMedia)
			media.POST("", c.mediaHandler.AddMedia)
			media.DELETE("/:id", c.mediaHandler.DeleteMedia)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", c.settingHandler.GetSettings)
			settings.PUT("", c.settingHandler.UpdateSettings)
			settings.PUT("/notifications/:kind", c.settingHandler.SetNotification)
			settings.GET("/api-keys", c.settingHandler.GetAPIKeys)
			settings.PUT("/api-keys", c.settingHandler.UpdateAPIKeys)
		}

		api.GET("/dashboard/stats", c.dashboardHandler.GetStats)

		storage := api.Group("/storage")
		{
			storage.POST("/sweep", c.dashboardHandler.Sweep)
			storage.DELETE("", c.dashboardHandler.ClearAll)
		}
	}
}
