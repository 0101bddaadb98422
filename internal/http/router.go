package api

import (
	"log"
	stdhttp "net/http"

	intconfig "trekhub/internal/config"
	h "trekhub/internal/http/handlers"
	"trekhub/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(env.JWTSecret), middleware.RequireRoles(env.AdminRoles...))
		mountAdminBookings(admin.Group("/bookings"))
	}

	h.SetRouter(r)
	return r
}

func mountAdminBookings(g *gin.RouterGroup) {
	g.GET("/export", h.ExportBookings)
	g.GET("/:id/trek-sheet", h.GetTrekSheetPDF)
}
