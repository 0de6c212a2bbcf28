package middleware

import (
	"github.com/gin-gonic/gin"

	"issuer/internal/service"
	"issuer/pkg/constants"
	"issuer/pkg/responses"
)

// AuthMiddleware 会话认证中间件。
// 从Cookie里取 user_code:token 形式的会话凭据并校验。
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(constants.CookieCurrentUser)
		if err != nil {
			responses.ErrorWithCode(c, 401, "缺少会话Cookie")
			c.Abort()
			return
		}

		user, err := authService.Validate(cookie)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextUserKey, user.UserCode)
		c.Next()
	}
}

// CurrentUser 取出中间件写入的当前用户码
func CurrentUser(c *gin.Context) string {
	return c.GetString(constants.ContextUserKey)
}
