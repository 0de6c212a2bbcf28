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

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建项目
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// GetByCode 获取项目详情，含参与者
func (h *ProjectHandler) GetByCode(c *gin.Context) {
	projectCode := c.Query("project_code")
	if projectCode == "" {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少project_code参数")
		return
	}

	project, err := h.projectService.GetByCode(middleware.CurrentUser(c), projectCode)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Query 项目组合查询，结果受可见性约束
func (h *ProjectHandler) Query(c *gin.Context) {
	var req dto.QueryProjectRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	projects, total, err := h.projectService.Query(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, projects, total, req.GetPage(), req.GetPageSize())
}

// Update 更新项目
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Delete 删除项目
func (h *ProjectHandler) Delete(c *gin.Context) {
	var param dto.CodeParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.projectService.Delete(middleware.CurrentUser(c), param.Code); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// Join 加入项目
func (h *ProjectHandler) Join(c *gin.Context) {
	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.projectService.Join(middleware.CurrentUser(c), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
