package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/mentor-link/api-go/repository"
	"github.com/mentor-link/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token. The token must carry a
// good signature and still have its row in auth_tokens; logout deletes
// the row, so revoked tokens fail here even before expiry.
func AuthMiddleware(tokens repository.AuthTokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveToken(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is
// present and continues anonymously otherwise. Used on public routes
// whose responses are caller-aware (public profiles, discovery).
func OptionalAuthMiddleware(tokens repository.AuthTokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveToken(c, tokens); ok {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func resolveToken(c *gin.Context, tokens repository.AuthTokenRepository) (*utils.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	token := bearerToken[1]
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}

	if _, err := tokens.FindByToken(token); err != nil {
		return nil, false
	}

	return &utils.UserClaims{UserID: uint(userID)}, true
}
