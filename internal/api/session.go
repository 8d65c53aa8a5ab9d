package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/session"
)

// sessionID returns the caller's session ID or writes a 401 and reports false.
func sessionID(c *gin.Context) (string, bool) {
	s, err := session.FromContext(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error(), redirect{Redirect: "/"})
		return "", false
	}
	return s.ID, true
}
