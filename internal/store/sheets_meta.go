package store

import (
	"encoding/json"
	"fmt"
)

// SheetMeta 시트별 가져오기 결과 (추적용)
type SheetMeta struct {
	ImportLogID  int64
	SheetName    string
	TotalRows    int
	SkippedRows  int
	RecordCount  int
	ColumnsJSON  string
	Status       string
	ErrorMessage string
}

// InsertSheetMeta 시트 메타 기록
func (s *Store) InsertSheetMeta(meta SheetMeta) error {
	if meta.ColumnsJSON == "" {
		meta.ColumnsJSON = "[]"
	}
	_, err := s.db.Exec(`
		INSERT INTO sheets_meta (
			import_log_id, sheet_name,
			total_rows, skipped_rows, record_count,
			columns_json, status, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		meta.ImportLogID, meta.SheetName,
		meta.TotalRows, meta.SkippedRows, meta.RecordCount,
		meta.ColumnsJSON, meta.Status, meta.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sheets_meta: %w", err)
	}
	return nil
}

// BuildColumnsJSON 헤더 목록 JSON 직렬화
func BuildColumnsJSON(columns []string) string {
	b, err := json.Marshal(columns)
	if err != nil {
		return "[]"
	}
	return string(b)
}
