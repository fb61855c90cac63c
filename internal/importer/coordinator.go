package importer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"attendash/internal/model"
	memstore "attendash/internal/service/store"
	"attendash/internal/store"
	"attendash/internal/workbook"
)

// Coordinator 가져오기 조정자
//
// 파일 디코딩 → 시트 변환 → 메모리 저장소 교체 → (선택) SQLite 저장 순으로 진행하고
// 진행 상황을 이벤트로 흘려보낸다. 동시에 하나의 가져오기만 허용한다.
type Coordinator struct {
	store   *store.Store
	memory  *memstore.MemoryStore
	running atomic.Bool
}

// NewCoordinator 조정자 생성 (db 가 nil 이면 저장 단계 생략)
func NewCoordinator(db *store.Store, memory *memstore.MemoryStore) *Coordinator {
	return &Coordinator{
		store:  db,
		memory: memory,
	}
}

// ImportOptions 가져오기 옵션
type ImportOptions struct {
	FilePath         string
	OriginalFilename string // 업로드 원본 파일명 (비어 있으면 FilePath 의 파일명)
	Persist          bool   // 완료 후 SQLite 에 저장
}

// Running 가져오기 진행 여부
func (c *Coordinator) Running() bool {
	return c.running.Load()
}

// Import 가져오기 시작, 진행 이벤트 채널 반환
func (c *Coordinator) Import(opts ImportOptions) (<-chan ProgressEvent, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrImportInProgress
	}

	progressChan := make(chan ProgressEvent, 100)
	go func() {
		defer close(progressChan)
		defer c.running.Store(false)
		c.doImport(opts, progressChan)
	}()
	return progressChan, nil
}

func (c *Coordinator) doImport(opts ImportOptions, ch chan ProgressEvent) {
	startTime := time.Now()
	filename := opts.OriginalFilename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	report := &ImportReport{
		ImportID: uuid.New().String(),
		Filename: filename,
		Sheets:   []SheetResult{},
	}

	c.send(ch, EventStart, "엑셀 파일 가져오기 시작", map[string]string{
		"filename": filename,
		"importId": report.ImportID,
	})

	data, err := os.ReadFile(opts.FilePath)
	if err != nil {
		c.send(ch, EventError, fmt.Sprintf("파일 열기 실패: %v", err), nil)
		return
	}

	logID := c.createImportLog(ch, report, data)

	sheets, err := workbook.Decode(bytes.NewReader(data), filename)
	if err != nil {
		c.send(ch, EventError, fmt.Sprintf("파일 해석 실패: %v", err), nil)
		c.finishImportLog(logID, report, "error", err.Error())
		return
	}

	report.TotalSheets = len(sheets)
	c.send(ch, EventInfo, fmt.Sprintf("시트 %d개 발견", len(sheets)), map[string]interface{}{
		"total_sheets": len(sheets),
	})

	for _, sh := range sheets {
		c.send(ch, EventSheetStart, fmt.Sprintf("시트 처리 중: %s", sh.Name), map[string]string{
			"sheet_name": sh.Name,
		})
	}

	result := Reduce(sheets)
	for i, sr := range result.Sheets {
		c.recordSheetResult(report, sr)
		c.insertSheetMeta(logID, sr, sheets[i].Headers)
		if sr.Status == SheetStatusSkipped {
			c.send(ch, EventWarning, fmt.Sprintf("시트 건너뜀: %s (%v)", sr.SheetName, sr.Errors), sr)
			continue
		}
		c.send(ch, EventSheetDone, fmt.Sprintf("시트 \"%s\" 완료: %d건", sr.SheetName, sr.RecordCount), sr)
	}

	c.memory.Replace(result.Records, result.Months)
	report.Months = result.Months

	if opts.Persist && c.store != nil {
		snap := model.Snapshot{Version: model.SnapshotVersion, Months: result.Months, Records: result.Records}
		if err := c.store.SaveSnapshot(snap, report.ImportID); err != nil {
			c.send(ch, EventWarning, fmt.Sprintf("저장 실패: %v", err), nil)
		} else {
			report.Persisted = true
		}
	}

	report.Duration = time.Since(startTime)
	c.finishImportLog(logID, report, "done", "")

	c.send(ch, EventDone, fmt.Sprintf("가져오기 완료: %d건", report.TotalRecords), report)
}

func (c *Coordinator) createImportLog(ch chan ProgressEvent, report *ImportReport, data []byte) int64 {
	if c.store == nil {
		return 0
	}
	sum := sha256.Sum256(data)
	id, err := c.store.CreateImportLog(report.ImportID, report.Filename, int64(len(data)), hex.EncodeToString(sum[:]))
	if err != nil {
		c.send(ch, EventWarning, fmt.Sprintf("가져오기 이력 생성 실패: %v", err), nil)
		return 0
	}
	return id
}

func (c *Coordinator) finishImportLog(logID int64, report *ImportReport, status, message string) {
	if c.store == nil || logID == 0 {
		return
	}
	err := c.store.UpdateImportLog(logID, store.ImportLogUpdate{
		Status:         status,
		TotalSheets:    report.TotalSheets,
		ImportedSheets: report.ImportedSheets,
		SkippedSheets:  report.SkippedSheets,
		TotalRows:      report.TotalRows,
		SkippedRows:    report.SkippedRows,
		TotalRecords:   report.TotalRecords,
		ErrorMessage:   message,
	})
	if err != nil {
		log.Printf("import log update failed: %v", err)
	}
}

func (c *Coordinator) insertSheetMeta(logID int64, sr SheetResult, headers []string) {
	if c.store == nil || logID == 0 {
		return
	}
	msg := ""
	if len(sr.Errors) > 0 {
		msg = sr.Errors[0]
	}
	err := c.store.InsertSheetMeta(store.SheetMeta{
		ImportLogID:  logID,
		SheetName:    sr.SheetName,
		TotalRows:    sr.TotalRows,
		SkippedRows:  sr.SkippedRows,
		RecordCount:  sr.RecordCount,
		ColumnsJSON:  store.BuildColumnsJSON(headers),
		Status:       sr.Status,
		ErrorMessage: msg,
	})
	if err != nil {
		log.Printf("sheet meta insert failed: %v", err)
	}
}

// recordSheetResult 시트 결과를 보고서에 합산
func (c *Coordinator) recordSheetResult(report *ImportReport, sr SheetResult) {
	report.Sheets = append(report.Sheets, sr)

	switch sr.Status {
	case SheetStatusImported:
		report.ImportedSheets++
	case SheetStatusSkipped:
		report.SkippedSheets++
	}
	report.TotalRows += sr.TotalRows
	report.SkippedRows += sr.SkippedRows
	report.TotalRecords += sr.RecordCount
}

// send 진행 이벤트 전송 (채널이 가득 차면 버림, 완료/오류 이벤트는 반드시 전달)
func (c *Coordinator) send(ch chan ProgressEvent, typ, message string, data interface{}) {
	event := ProgressEvent{
		Type:      typ,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
	if typ == EventDone || typ == EventError {
		ch <- event
		return
	}
	select {
	case ch <- event:
	default:
	}
}
