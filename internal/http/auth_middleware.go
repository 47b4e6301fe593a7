package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PranavThorat1432/MERN-Authentication-System/internal/service"
)

const (
	// SessionCookieName es la cookie que transporta el token de sesión.
	SessionCookieName = "token"

	authUserIDKey = "auth_user_id"
)

// CookieAuthMiddleware valida el token de sesión de la cookie y deja el
// identificador de la cuenta en el contexto.
func CookieAuthMiddleware(tokenSvc *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token service not configured", "success": false})
			c.Abort()
			return
		}

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, login again", "success": false})
			c.Abort()
			return
		}

		userID, err := tokenSvc.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, login again", "success": false})
			c.Abort()
			return
		}

		c.Set(authUserIDKey, userID)
		c.Next()
	}
}

// GetAuthUserID obtiene el identificador de cuenta dejado por el middleware.
func GetAuthUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(authUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}
