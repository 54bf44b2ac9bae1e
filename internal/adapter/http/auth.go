package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/adapter/http/ratelimit"
	"github.com/bnema/vitrine/internal/domain"
)

const requesterKey = "requester"

type TokenValidator interface {
	Validate(token string) (domain.Requester, error)
}

// RequireAuth resolves the bearer token into a Requester. Clients that keep
// presenting bad tokens are turned away by limiter before validation.
func RequireAuth(tokens TokenValidator, limiter *ratelimit.AuthFailureLimiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()

		if limiter != nil {
			if blocked, remaining := limiter.Blocked(clientID); blocked {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(remaining.Seconds()))))
				fail(c, http.StatusTooManyRequests, "Too many failed authentication attempts", nil)
				return
			}
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			fail(c, http.StatusUnauthorized, "Missing or malformed authorization header", nil)
			return
		}

		req, err := tokens.Validate(token)
		if err != nil {
			if limiter != nil && limiter.Fail(clientID) {
				log.Warn("client blocked after repeated auth failures", zap.String("client_ip", clientID))
			}
			fail(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		if limiter != nil {
			limiter.Reset(clientID)
		}

		c.Set(requesterKey, req)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func requesterFrom(c *gin.Context) domain.Requester {
	v, _ := c.Get(requesterKey)
	req, _ := v.(domain.Requester)
	return req
}
