package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/bnema/vitrine/internal/domain"
)

// Origin records the scheme and host the client used, so relative asset refs
// can be handed out as absolute URLs. Forwarded headers are only honoured
// when behindProxy is set.
func Origin(behindProxy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		host := c.Request.Host

		if behindProxy {
			if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
				scheme = proto
			}
			if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
				host = fwd
			}
		}

		ctx := domain.WithOrigin(c.Request.Context(), domain.Origin{Scheme: scheme, Host: host})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
