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

type UserGroupHandler struct {
	groupService service.UserGroupService
}

func NewUserGroupHandler(groupService service.UserGroupService) *UserGroupHandler {
	return &UserGroupHandler{
		groupService: groupService,
	}
}

// Create 创建用户组
func (h *UserGroupHandler) Create(c *gin.Context) {
	var req dto.CreateUserGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	group, err := h.groupService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, group)
}

// GetByCode 获取用户组详情
func (h *UserGroupHandler) GetByCode(c *gin.Context) {
	groupCode := c.Query("group_code")
	if groupCode == "" {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少group_code参数")
		return
	}

	group, err := h.groupService.GetByCode(groupCode)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, group)
}

// Query 用户组组合查询
func (h *UserGroupHandler) Query(c *gin.Context) {
	var req dto.QueryUserGroupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	groups, total, err := h.groupService.Query(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, groups, total, req.GetPage(), req.GetPageSize())
}

// Update 更新用户组
func (h *UserGroupHandler) Update(c *gin.Context) {
	var req dto.UpdateUserGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	group, err := h.groupService.Update(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, group)
}

// Delete 解散用户组
func (h *UserGroupHandler) Delete(c *gin.Context) {
	var param dto.CodeParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.groupService.Delete(middleware.CurrentUser(c), param.Code); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
