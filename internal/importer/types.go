package importer

import (
	"errors"
	"time"
)

// ErrImportInProgress 가져오기가 이미 진행 중
var ErrImportInProgress = errors.New("import already in progress")

// 시트 처리 상태
const (
	SheetStatusImported = "imported"
	SheetStatusSkipped  = "skipped"
)

// 진행 이벤트 종류
const (
	EventStart      = "start"
	EventInfo       = "info"
	EventWarning    = "warning"
	EventSheetStart = "sheet_start"
	EventSheetDone  = "sheet_done"
	EventError      = "error"
	EventDone       = "done"
)

// SheetResult 시트별 결과
type SheetResult struct {
	SheetName   string   `json:"sheetName"`
	Status      string   `json:"status"`
	TotalRows   int      `json:"totalRows"`
	SkippedRows int      `json:"skippedRows"` // 성명 없는 행
	RecordCount int      `json:"recordCount"`
	Errors      []string `json:"errors,omitempty"`
}

// ImportReport 가져오기 보고서
type ImportReport struct {
	ImportID       string        `json:"importId"`
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	TotalRows      int           `json:"totalRows"`
	SkippedRows    int           `json:"skippedRows"`
	TotalRecords   int           `json:"totalRecords"`
	Months         []string      `json:"months"`
	Persisted      bool          `json:"persisted"`
	Duration       time.Duration `json:"duration"`
	Sheets         []SheetResult `json:"sheets"`
}

// ProgressEvent 진행 이벤트
type ProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
