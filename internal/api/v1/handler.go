package v1

import (
	"sync"

	"github.com/gin-gonic/gin"

	"attendash/internal/importer"
	memstore "attendash/internal/service/store"
	"attendash/internal/store"
)

// Handler 근태 API 처리기
type Handler struct {
	memory      *memstore.MemoryStore
	store       *store.Store // nil 이면 메모리 전용
	coordinator *importer.Coordinator
	opts        Options

	mu       sync.Mutex
	selected string // store 가 없을 때 선택 월
}

// Options 처리기 옵션
type Options struct {
	PersistOnImport bool
	MaxUploadBytes  int64
	BackupPath      string // 비어 있으면 JSON 백업 없음
}

// NewHandler 처리기 생성
func NewHandler(memory *memstore.MemoryStore, db *store.Store, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 32 << 20
	}
	return &Handler{
		memory:      memory,
		store:       db,
		coordinator: importer.NewCoordinator(db, memory),
		opts:        opts,
	}
}

// RegisterRoutes 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 상태
	router.GET("/status", h.GetStatus)

	// 월/직원 조회
	router.GET("/months", h.ListMonths)
	router.POST("/months/select", h.SelectMonth)
	router.GET("/months/:month/employees", h.ListEmployees)
	router.GET("/months/:month/employees/:name", h.GetEmployee)

	// 가져오기
	router.POST("/import", h.Import)

	// 저장/초기화
	router.POST("/save", h.Save)
	router.DELETE("/data", h.ClearData)
	router.GET("/snapshot", h.GetSnapshot)
	router.POST("/snapshot", h.RestoreSnapshot)

	// 내보내기
	router.GET("/export", h.Export)
}
