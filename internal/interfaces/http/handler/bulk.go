package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/application/bulk"
)

// BulkHandler handles bulk import and export endpoints
type BulkHandler struct {
	BaseHandler
	importService *bulk.ImportService
	exportService *bulk.ExportService
}

// NewBulkHandler creates a new BulkHandler
func NewBulkHandler(importService *bulk.ImportService, exportService *bulk.ExportService) *BulkHandler {
	return &BulkHandler{
		importService: importService,
		exportService: exportService,
	}
}

// RegisterRoutes registers bulk routes
func (h *BulkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bulkGroup := rg.Group("/bulk")
	{
		bulkGroup.POST("/import", h.Import)
		bulkGroup.GET("/export", h.Export)
	}
}

// Import applies a tabular batch and returns the reconciliation report.
// Row failures land in the report, not in the HTTP status.
func (h *BulkHandler) Import(c *gin.Context) {
	var req bulk.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.importService.Import(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Export projects the catalog into the tabular exchange shape
func (h *BulkHandler) Export(c *gin.Context) {
	data, err := h.exportService.Export(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, data)
}
