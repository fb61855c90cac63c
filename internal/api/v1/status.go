package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendash/internal/store"
)

// StatusResponse 시스템 상태
type StatusResponse struct {
	Initialized     bool              `json:"initialized"`
	TotalRecords    int               `json:"totalRecords"`
	Months          []string          `json:"months"`
	SelectedMonth   string            `json:"selectedMonth"`
	Importing       bool              `json:"importing"`
	Persistent      bool              `json:"persistent"`
	PersistedCount  int               `json:"persistedCount"`
	PersistedMonths []store.MonthStat `json:"persistedMonths,omitempty"`
	LastImport      *store.ImportLog  `json:"lastImport,omitempty"`
}

// GetStatus 시스템 상태 조회
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count := h.memory.Count()
	resp := StatusResponse{
		Initialized:   count > 0,
		TotalRecords:  count,
		Months:        h.memory.Months(),
		SelectedMonth: h.selectedMonth(),
		Importing:     h.coordinator.Running(),
		Persistent:    h.store != nil,
	}

	if h.store != nil {
		if n, err := h.store.CountRecords(); err == nil {
			resp.PersistedCount = n
		}
		stats, err := h.store.ListMonthStats()
		if err != nil {
			log.Printf("load month stats failed: %v", err)
		}
		resp.PersistedMonths = stats
		last, err := h.store.LastImportLog()
		if err != nil {
			log.Printf("load last import log failed: %v", err)
		}
		resp.LastImport = last
	}

	c.JSON(http.StatusOK, resp)
}
