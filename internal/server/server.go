package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	v1 "attendash/internal/api/v1"
	"attendash/internal/config"
	"attendash/internal/model"
	"attendash/internal/service/backup"
	memstore "attendash/internal/service/store"
	"attendash/internal/store"
)

// Server HTTP 서버
type Server struct {
	router    *gin.Engine
	backupDir string
	store     *store.Store
	memory    *memstore.MemoryStore
	v1        *v1.Handler
}

// NewServer 서버 생성 (SQLite 초기화, 저장된 세대 복원)
func NewServer(cfg *config.AppConfig) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if _, err := config.EnsureDataDir(cfg); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	sqliteStore, err := store.New(config.DBPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	memory := memstore.NewMemoryStore()
	backupDir := config.BackupDir(cfg)
	if cfg.Data.AutoLoad {
		restore(memory, sqliteStore, backupDir)
	}

	s := &Server{
		router:    gin.Default(),
		backupDir: backupDir,
		store:     sqliteStore,
		memory:    memory,
		v1: v1.NewHandler(memory, sqliteStore, v1.Options{
			PersistOnImport: cfg.Import.Persist,
			MaxUploadBytes:  int64(cfg.Import.MaxUploadMB) << 20,
			BackupPath:      backup.Path(backupDir),
		}),
	}

	s.setupRoutes()

	return s, nil
}

// restore SQLite 세대 우선, 비어 있으면 JSON 백업
func restore(memory *memstore.MemoryStore, db *store.Store, backupDir string) {
	snap, err := db.LoadSnapshot()
	if err != nil {
		log.Printf("load persisted records failed: %v", err)
	}
	if err != nil || isEmpty(snap) {
		path := backup.Path(backupDir)
		if !backup.Exists(path) {
			return
		}
		if snap, err = backup.Read(path); err != nil {
			log.Printf("load backup failed: %v", err)
			return
		}
	}
	if isEmpty(snap) {
		return
	}
	memory.Restore(snap)
	log.Printf("restored %d records (%d months)", len(snap.Records), len(snap.Months))
}

func isEmpty(snap model.Snapshot) bool {
	return len(snap.Records) == 0 && len(snap.Months) == 0
}

// setupRoutes 라우트 설정
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "path": c.Request.URL.Path})
	})
}

// Handler http.Handler (테스트용)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow 현재 세대 즉시 저장 (SQLite + JSON 백업)
func (s *Server) SaveNow() error {
	if s.memory.Count() == 0 {
		return nil
	}
	snap := s.memory.Snapshot()
	if err := s.store.SaveSnapshot(snap, "shutdown-"+uuid.New().String()); err != nil {
		return err
	}
	return backup.Write(backup.Path(s.backupDir), snap)
}

// Close DB 연결 종료
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore SQLite 저장소 (테스트용)
func (s *Server) GetStore() *store.Store {
	return s.store
}

// Memory 메모리 저장소
func (s *Server) Memory() *memstore.MemoryStore {
	return s.memory
}
