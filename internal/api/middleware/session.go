package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/logging"
	"github.com/nikolayk812/possale/internal/session"
)

const (
	HeaderSessionID   = "X-Session-Id"
	HeaderSessionRole = "X-Session-Role"
	HeaderSessionName = "X-Session-Name"
)

// Session builds the session from request headers and stores it in the request context.
// Requests without a valid session are sent back to the login screen.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := session.New(
			c.GetHeader(HeaderSessionID),
			c.GetHeader(HeaderSessionRole),
			c.GetHeader(HeaderSessionName),
		)
		if err != nil {
			logging.From(c).Warn("rejected session", "error", err)
			response.Abort(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error(), gin.H{"redirect": "/"})
			return
		}

		c.Request = c.Request.WithContext(session.WithContext(c.Request.Context(), s))
		c.Next()
	}
}

// RequireRole lets through sessions holding one of roles.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := session.FromContext(c.Request.Context())
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error(), gin.H{"redirect": "/"})
			return
		}
		if !s.HasRole(roles...) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "role["+string(s.Role)+"] is not allowed", nil)
			return
		}
		c.Next()
	}
}
