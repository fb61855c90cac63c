package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"attendash/internal/importer"
)

// Import 엑셀 가져오기 (SSE 진행 스트림)
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	if h.coordinator.Running() {
		c.JSON(http.StatusConflict, gin.H{"error": importer.ErrImportInProgress.Error()})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)
	uploadedFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload file"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(),
		fmt.Sprintf("attendash_import_%d_%s", time.Now().UnixNano(), filepath.Base(uploadedFile.Filename)))
	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempFilePath)

	persist := c.DefaultPostForm("persist", fmt.Sprint(h.opts.PersistOnImport)) == "true"

	progressChan, err := h.coordinator.Import(importer.ImportOptions{
		FilePath:         tempFilePath,
		OriginalFilename: uploadedFile.Filename,
		Persist:          persist,
	})
	if errors.Is(err, importer.ErrImportInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, _ := c.Writer.(http.Flusher)
	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		// SSE: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		if flusher != nil {
			flusher.Flush()
		}
	}
}
