package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"attendash/internal/exporter"
)

// Export 근태 요약 xlsx 내려받기
// GET /api/export?month=
func (h *Handler) Export(c *gin.Context) {
	month := c.Query("month")

	file, err := exporter.NewExporter(h.memory).Export(exporter.ExportOptions{Month: month})
	if errors.Is(err, exporter.ErrNoData) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed: " + err.Error()})
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", buildExportContentDisposition(month))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// buildExportContentDisposition ASCII 대체 파일명 + UTF-8 파일명
func buildExportContentDisposition(month string) string {
	ascii := "attendance-summary.xlsx"
	name := "근태요약.xlsx"
	if month != "" {
		name = fmt.Sprintf("근태요약_%s.xlsx", month)
	}
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", ascii, url.PathEscape(name))
}
