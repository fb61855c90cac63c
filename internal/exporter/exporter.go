package exporter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"attendash/internal/calculator"
	"attendash/internal/model"
	memstore "attendash/internal/service/store"
)

// 시트 이름
const (
	SummarySheet = "요약"
	DetailSheet  = "상세"
)

// ErrNoData 내보낼 레코드 없음
var ErrNoData = errors.New("no attendance data to export")

// Source 내보내기 대상 (메모리 저장소가 구현, 한 세대 전체를 돌려준다)
type Source interface {
	Snapshot() model.Snapshot
}

// Exporter 근태 요약 내보내기
type Exporter struct {
	source Source
}

// NewExporter 생성
func NewExporter(source Source) *Exporter {
	return &Exporter{source: source}
}

// ExportOptions 내보내기 옵션
type ExportOptions struct {
	Month    string // 비어 있으면 전체 월
	Progress func(Progress)
}

var summaryHeaders = []interface{}{
	"월", "성명", "사번",
	"시간외(시간)", "휴가(시간)", "병가(시간)", "조기퇴근(시간)", "산전후휴가(시간)", "임산부정기검진(시간)", "출장(시간)",
	"기타(건)", "출장(건)", "관내출장", "관외출장", "국외출장", "국내출장", "관내+국내", "레코드",
}

var detailHeaders = []interface{}{
	"월", "성명", "사번", "날짜", "분류", "세부유형", "시간외(시간)", "기간(시간)", "휴무",
}

// Export 월별 요약/상세 시트 작성 (저장 문서 하나만 읽는다)
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	snap := e.source.Snapshot()
	months := append([]string(nil), snap.Months...)
	memstore.SortMonths(months)
	if opts.Month != "" {
		if !slices.Contains(months, opts.Month) {
			return nil, fmt.Errorf("%w: month %q", ErrNoData, opts.Month)
		}
		months = []string{opts.Month}
	}
	if len(months) == 0 {
		return nil, ErrNoData
	}

	notify(opts.Progress, 0, len(months), "")

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(DetailSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := fill(f, snap.Records, months, opts.Progress); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fill(f *excelize.File, records []model.AttendanceRecord, months []string, progress func(Progress)) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style failed: %w", err)
	}
	if err := writeHeader(f, SummarySheet, summaryHeaders, bold); err != nil {
		return err
	}
	if err := writeHeader(f, DetailSheet, detailHeaders, bold); err != nil {
		return err
	}

	summaryRow, detailRow := 2, 2
	for i, month := range months {
		summaries := calculator.SummarizeMonth(records, month)
		byName := recordsByName(records, month)

		names := make([]string, 0, len(summaries))
		for n := range summaries {
			names = append(names, n)
		}
		memstore.SortNames(names)

		for _, name := range names {
			if err := writeSummaryRow(f, summaryRow, calculator.RoundSummary(summaries[name])); err != nil {
				return err
			}
			summaryRow++

			recs := byName[name]
			memstore.SortByDate(recs)
			for _, r := range recs {
				if err := writeDetailRow(f, detailRow, r); err != nil {
					return err
				}
				detailRow++
			}
		}
		notify(progress, i+1, len(months), month)
	}

	_ = f.SetPanes(SummarySheet, freezeHeader())
	_ = f.SetPanes(DetailSheet, freezeHeader())
	return nil
}

// recordsByName 해당 월 레코드를 직원별로 (입력 순서 유지)
func recordsByName(records []model.AttendanceRecord, month string) map[string][]model.AttendanceRecord {
	out := map[string][]model.AttendanceRecord{}
	for _, r := range records {
		if r.Month == month {
			out[r.Name] = append(out[r.Name], r)
		}
	}
	return out
}

func freezeHeader() *excelize.Panes {
	return &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
}

func writeHeader(f *excelize.File, sheet string, headers []interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write %s header failed: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeSummaryRow(f *excelize.File, row int, s model.MonthlySummary) error {
	values := []interface{}{
		s.Month, s.Name, s.EmployeeID,
		s.OvertimeHours, s.DayOffHours, s.SickLeaveHours, s.EarlyLeaveHours,
		s.MaternityLeaveHours, s.PregnancyCheckupHours, s.TripHours,
		s.OtherCount, s.TripCount, s.LocalTripCount, s.OutsideTripCount,
		s.InternationalTripCount, s.DomesticTripCount, s.DomesticCombinedTripCount,
		s.RecordCount,
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return f.SetSheetRow(SummarySheet, cell, &values)
}

func writeDetailRow(f *excelize.File, row int, r model.AttendanceRecord) error {
	dayOff := ""
	if r.IsDayOff {
		dayOff = "Y"
	}
	values := []interface{}{
		r.Month, r.Name, r.EmployeeID, r.Date,
		r.Category.Label(), r.SubType,
		calculator.RoundHours(r.OvertimeHours), calculator.RoundHours(r.DurationHours),
		dayOff,
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return f.SetSheetRow(DetailSheet, cell, &values)
}
