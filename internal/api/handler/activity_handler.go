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

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// List 动态流查询。不传subject时返回当前用户自己的动态。
func (h *ActivityHandler) List(c *gin.Context) {
	var req dto.QueryActivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = middleware.CurrentUser(c)
	}

	activities, err := h.activityService.ListBySubject(subject, req.Limit)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, activities)
}

// ListByTargets 按对象集合查询动态，用于渲染项目/议题的动态页
func (h *ActivityHandler) ListByTargets(c *gin.Context) {
	targets := c.QueryArray("targets")
	if len(targets) == 0 {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少targets参数")
		return
	}

	var req dto.QueryActivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	activities, err := h.activityService.ListByTargets(targets, req.Limit)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, activities)
}
