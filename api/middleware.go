package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key carrying the verified user identifier.
const identityKey = "identity"

// requireAuth rejects requests without a valid bearer token. History
// operations are owner-scoped and meaningless without an identity.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		userID, err := s.verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(identityKey, userID)
		c.Next()
	}
}

// optionalAuth attaches an identity when a valid token is present and
// otherwise lets the request through as anonymous. A bad token degrades to
// anonymous rather than failing the analysis.
func (s *Server) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := s.verifier.Verify(token); err == nil {
				c.Set(identityKey, userID)
			}
		}
		c.Next()
	}
}

// identity returns the verified user identifier, or "" for anonymous.
func identity(c *gin.Context) string {
	id, _ := c.Get(identityKey)
	userID, _ := id.(string)
	return userID
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
