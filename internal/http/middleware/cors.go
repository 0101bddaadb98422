package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the admin dashboard origins to call the API with
// credentials. A single "*" entry opens the API to every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch {
		case o == "*":
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
		case strings.HasPrefix(o, "http://"), strings.HasPrefix(o, "https://"):
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		case o != "":
			log.Printf("warning: ignoring CORS origin %q (must start with http:// or https://)", o)
		}
	}
	if cfg.AllowAllOrigins {
		cfg.AllowOrigins = nil
	} else if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}

	return cors.New(cfg)
}
