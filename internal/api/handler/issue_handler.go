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

type IssueHandler struct {
	issueService service.IssueService
}

func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
	}
}

// Create 创建议题
func (h *IssueHandler) Create(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issue, err := h.issueService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// GetByCode 获取议题详情
func (h *IssueHandler) GetByCode(c *gin.Context) {
	issueCode := c.Query("issue_code")
	if issueCode == "" {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少issue_code参数")
		return
	}

	issue, err := h.issueService.GetByCode(issueCode)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// Query 议题组合查询
func (h *IssueHandler) Query(c *gin.Context) {
	var req dto.QueryIssueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issues, total, err := h.issueService.Query(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, issues, total, req.GetPage(), req.GetPageSize())
}

// Update 更新议题
func (h *IssueHandler) Update(c *gin.Context) {
	var req dto.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	issue, err := h.issueService.Update(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, issue)
}

// Follow 关注/取关议题
func (h *IssueHandler) Follow(c *gin.Context) {
	var req dto.FollowIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.issueService.Follow(middleware.CurrentUser(c), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// Delete 删除议题
func (h *IssueHandler) Delete(c *gin.Context) {
	var param dto.CodeParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.issueService.Delete(middleware.CurrentUser(c), param.Code); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
