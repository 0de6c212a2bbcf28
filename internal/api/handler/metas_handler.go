package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuer/internal/service"
	"issuer/pkg/responses"
)

type MetasHandler struct {
	metasService service.MetasService
}

func NewMetasHandler(metasService service.MetasService) *MetasHandler {
	return &MetasHandler{
		metasService: metasService,
	}
}

// ListByType 按类型查询枚举字典，前端下拉框数据源
func (h *MetasHandler) ListByType(c *gin.Context) {
	metaType := c.Query("meta_type")
	if metaType == "" {
		responses.ErrorWithCode(c, http.StatusBadRequest, "缺少meta_type参数")
		return
	}

	metas, err := h.metasService.ListByType(metaType)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, metas)
}
