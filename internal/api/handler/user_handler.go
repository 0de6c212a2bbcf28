package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuer/internal/api/middleware"
	"issuer/internal/dto"
	"issuer/internal/service"
	"issuer/pkg/responses"
	"issuer/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe 获取当前登录用户信息
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetByCode(middleware.CurrentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// GetByCode 按用户码查询用户
func (h *UserHandler) GetByCode(c *gin.Context) {
	userCode := c.Query("user_code")
	if userCode == "" {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少user_code参数")
		return
	}

	user, err := h.userService.GetByCode(userCode)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// Update 更新用户资料
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Update(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// List 用户列表
func (h *UserHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	users, total, err := h.userService.List(page.GetPage(), page.GetPageSize())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, dto.NewPageResponse(users, total, page.GetPage(), page.GetPageSize()))
}
