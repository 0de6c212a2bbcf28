package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"issuer/internal/api/middleware"
	"issuer/internal/dto"
	"issuer/internal/service"
	"issuer/pkg/constants"
	"issuer/pkg/responses"
	"issuer/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp 用户注册
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.authService.SignUp(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// SignIn 用户登录，成功后下发会话Cookie
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	result, err := h.authService.SignIn(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	cookie := fmt.Sprintf("%s:%s", result.User.UserCode, result.Token)
	c.SetCookie(constants.CookieCurrentUser, cookie, result.ExpiresIn, "/", "", false, true)

	responses.Success(c, result)
}

// SignOut 用户登出，清空服务端token并作废Cookie
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authService.SignOut(middleware.CurrentUser(c)); err != nil {
		responses.Error(c, err)
		return
	}

	c.SetCookie(constants.CookieCurrentUser, "", -1, "/", "", false, true)
	responses.Success(c, nil)
}

// Cancel 用户注销，删除账号并清理参与关系
func (h *AuthHandler) Cancel(c *gin.Context) {
	if err := h.authService.Cancel(middleware.CurrentUser(c)); err != nil {
		responses.Error(c, err)
		return
	}

	c.SetCookie(constants.CookieCurrentUser, "", -1, "/", "", false, true)
	responses.Success(c, nil)
}
