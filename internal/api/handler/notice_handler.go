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

type NoticeHandler struct {
	noticeService service.NoticeService
}

func NewNoticeHandler(noticeService service.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// Create 发布公告
func (h *NoticeHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	notice, err := h.noticeService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, notice)
}

// List 公告列表，最新在前
func (h *NoticeHandler) List(c *gin.Context) {
	var req dto.QueryNoticeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	notices, err := h.noticeService.List(req.Limit)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, notices)
}

// Delete 撤下公告
func (h *NoticeHandler) Delete(c *gin.Context) {
	var param dto.CodeParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.noticeService.Delete(middleware.CurrentUser(c), param.Code); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
