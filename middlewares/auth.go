package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dineshnaiduavula/moviesample/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and (if given) enforces a role.
// Websocket upgrades can't set headers, so a ?token= query parameter is
// accepted as a fallback.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if q := c.Query("token"); q != "" {
			tokenStr = q
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort(); return
		}

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort(); return
		}

		c.Set("role", claims.Role)
		c.Set("sessionId", claims.SessionID)
		c.Set("staffId", claims.StaffID)
		c.Set("name", claims.Name)
		c.Set("phone", claims.Phone)
		c.Set("seatNumber", claims.SeatNumber)
		c.Set("screen", claims.Screen)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r { allowed = true; break }
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort(); return
			}
		}

		c.Next()
	}
}
