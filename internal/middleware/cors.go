package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Allain-afk/GlamQueue-sub001/internal/config"
)

// CORS builds the cross-origin policy from CORS_ALLOWED_ORIGINS, falling
// back to the local dev frontends.
func CORS(cfg *config.Config) gin.HandlerFunc {
	var allowedOrigins []string
	if cfg.CORSOrigins != "" {
		allowedOrigins = strings.Split(cfg.CORSOrigins, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowCredentials = true

	return cors.New(corsCfg)
}
