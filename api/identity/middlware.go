package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nhanhuynh123/pathgrid/service"
	"github.com/nhanhuynh123/pathgrid/service/i"
)

const (
	// ContextBoardClaims is the key used to store token claims in the Gin context.
	ContextBoardClaims = "boardClaims"
)

// Authoriz validates the bearer token of the request and stores its claims
// in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextBoardClaims, claims)
		c.Next()
	}
}

// RequireBoard rejects requests whose token was issued for a board other
// than the one named by the path parameter param. It must run after Authoriz.
func RequireBoard(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := c.Get(ContextBoardClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, ok := raw.(map[string]interface{})
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		boardID, _ := claims[service.ClaimBoardID].(string)
		if boardID == "" || !strings.EqualFold(boardID, c.Param(param)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this board"})
			return
		}
		c.Next()
	}
}
