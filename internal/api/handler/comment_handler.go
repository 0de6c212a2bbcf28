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

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create 新增评论
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	comment, err := h.commentService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comment)
}

// Fold 折叠/展开评论
func (h *CommentHandler) Fold(c *gin.Context) {
	var req dto.FoldCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.commentService.Fold(middleware.CurrentUser(c), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// List 评论查询，按议题或评论人
func (h *CommentHandler) List(c *gin.Context) {
	if issueCode := c.Query("issue_code"); issueCode != "" {
		comments, err := h.commentService.ListByIssue(issueCode)
		if err != nil {
			responses.Error(c, err)
			return
		}
		responses.Success(c, comments)
		return
	}

	if commenter := c.Query("commenter"); commenter != "" {
		comments, err := h.commentService.ListByCommenter(commenter)
		if err != nil {
			responses.Error(c, err)
			return
		}
		responses.Success(c, comments)
		return
	}

	responses.ErrorWithCode(c, http.StatusBadRequest, "缺少issue_code或commenter参数")
}
