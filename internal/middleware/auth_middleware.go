package middleware

import (
	"os"
	"strings"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abortUnauthorized(c *gin.Context) {
	httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}

// AuthMiddleware validates the session token (bearer header or cookie) and
// places the caller context (user_id, user_code, company_id, role) in the
// gin context. Services receive these values as parameters, never from
// ambient state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}

		userID, _ := claims["user_id"].(string)
		companyID, _ := claims["company_id"].(string)
		role, _ := claims["role"].(string)
		userCode, _ := claims["user_code"].(string)

		if userID == "" || companyID == "" {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Set("user_code", userCode)

		c.Next()
	}
}
