package middleware

import (
	"net/http"
	"strings"

	"network/pkg/context"
	"network/pkg/log"
	"network/pkg/response"
	"network/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie 浏览器表单请求通过 cookie 携带 token
const TokenCookie = "access_token"

// Auth 必须登录
func Auth(tokens service.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "Authentication required.")
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), token)
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		context.SetIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth 携带有效 token 时写入用户信息，否则按匿名访问继续
func OptionalAuth(tokens service.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err == nil && token != "" {
			if claims, err := tokens.Parse(c.Request.Context(), token); err == nil {
				context.SetIdentity(c, claims)
			} else {
				log.L.Debug("ignore token", zap.Error(err))
			}
		}
		c.Next()
	}
}

type tokenError string

func (e tokenError) Error() string { return string(e) }

// extractToken 优先 Authorization 头，其次 cookie
func extractToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", tokenError("Malformed Authorization header.")
		}
		return parts[1], nil
	}

	token, err := c.Cookie(TokenCookie)
	if err != nil {
		return "", nil
	}
	return token, nil
}
