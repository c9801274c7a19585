package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsAllowMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// CORSMiddleware lets any page (or the configured origin) read responses.
// Preflight requests are answered directly with 204 and the requested headers
// reflected back.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			h.Set("Access-Control-Allow-Headers", requested)
			h.Add("Vary", "Access-Control-Request-Headers")
		}
		h.Set("Content-Length", "0")
		c.AbortWithStatus(http.StatusNoContent)
	}
}
