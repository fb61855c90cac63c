package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"attendash/internal/model"
	"attendash/internal/service/backup"
)

// Save 현재 세대를 SQLite 에 저장
// POST /api/save
func (h *Handler) Save(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence disabled"})
		return
	}
	snap := h.memory.Snapshot()
	if err := h.store.SaveSnapshot(snap, "manual-"+uuid.New().String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"saved":  len(snap.Records),
		"months": snap.Months,
	})
}

// ClearData 메모리/저장소/백업 데이터 삭제
// DELETE /api/data
func (h *Handler) ClearData(c *gin.Context) {
	if h.coordinator.Running() {
		c.JSON(http.StatusConflict, gin.H{"error": "import in progress"})
		return
	}
	h.memory.Clear()
	if h.store != nil {
		if err := h.store.ClearData(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if h.opts.BackupPath != "" {
		if err := backup.Remove(h.opts.BackupPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "remove backup failed: " + err.Error()})
			return
		}
	}
	h.mu.Lock()
	h.selected = ""
	h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GetSnapshot 저장 문서 내려받기
// GET /api/snapshot
func (h *Handler) GetSnapshot(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="attendash-snapshot.json"`)
	c.JSON(http.StatusOK, h.memory.Snapshot())
}

// RestoreSnapshot 저장 문서로 복원 (인덱스 재구성)
// POST /api/snapshot
func (h *Handler) RestoreSnapshot(c *gin.Context) {
	if h.coordinator.Running() {
		c.JSON(http.StatusConflict, gin.H{"error": "import in progress"})
		return
	}

	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot document"})
		return
	}
	if err := snap.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.memory.Restore(snap)
	c.JSON(http.StatusOK, gin.H{
		"restored": h.memory.Count(),
		"months":   h.memory.Months(),
	})
}
