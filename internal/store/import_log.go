package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ImportLog 가져오기 이력
type ImportLog struct {
	ID             int64      `json:"id"`
	ImportID       string     `json:"importId"`
	Filename       string     `json:"filename"`
	FileSize       int64      `json:"fileSize"`
	Status         string     `json:"status"`
	TotalSheets    int        `json:"totalSheets"`
	ImportedSheets int        `json:"importedSheets"`
	SkippedSheets  int        `json:"skippedSheets"`
	TotalRows      int        `json:"totalRows"`
	SkippedRows    int        `json:"skippedRows"`
	TotalRecords   int        `json:"totalRecords"`
	ErrorMessage   string     `json:"errorMessage,omitempty"`
	StartedAt      time.Time  `json:"startedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// ImportLogUpdate 가져오기 완료 시 갱신 값
type ImportLogUpdate struct {
	Status         string
	TotalSheets    int
	ImportedSheets int
	SkippedSheets  int
	TotalRows      int
	SkippedRows    int
	TotalRecords   int
	ErrorMessage   string
}

// CreateImportLog 가져오기 이력 생성, id 반환
func (s *Store) CreateImportLog(importID, filename string, fileSize int64, fileHash string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (import_id, filename, file_size, file_hash, status)
		VALUES (?, ?, ?, ?, 'processing')
	`, importID, filename, fileSize, fileHash)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// UpdateImportLog 가져오기 결과 기록
func (s *Store) UpdateImportLog(id int64, u ImportLogUpdate) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			status = ?,
			total_sheets = ?,
			imported_sheets = ?,
			skipped_sheets = ?,
			total_rows = ?,
			skipped_rows = ?,
			total_records = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, u.Status, u.TotalSheets, u.ImportedSheets, u.SkippedSheets,
		u.TotalRows, u.SkippedRows, u.TotalRecords, u.ErrorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LastImportLog 가장 최근 이력 (없으면 nil)
func (s *Store) LastImportLog() (*ImportLog, error) {
	var (
		l         ImportLog
		completed sql.NullTime
	)
	err := s.db.QueryRow(`
		SELECT id, import_id, filename, file_size, status,
			total_sheets, imported_sheets, skipped_sheets,
			total_rows, skipped_rows, total_records, error_message,
			started_at, completed_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(
		&l.ID, &l.ImportID, &l.Filename, &l.FileSize, &l.Status,
		&l.TotalSheets, &l.ImportedSheets, &l.SkippedSheets,
		&l.TotalRows, &l.SkippedRows, &l.TotalRecords, &l.ErrorMessage,
		&l.StartedAt, &completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last import log failed: %w", err)
	}
	if completed.Valid {
		l.CompletedAt = &completed.Time
	}
	return &l, nil
}
