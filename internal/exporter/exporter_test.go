package exporter

import (
	"errors"
	"testing"

	"attendash/internal/model"
	memstore "attendash/internal/service/store"
)

func seededStore() *memstore.MemoryStore {
	s := memstore.NewMemoryStore()
	s.Replace([]model.AttendanceRecord{
		{Month: "1월", Name: "홍길동", EmployeeID: "1003", Date: "2021-01-05", Category: model.CategoryOvertime, SubType: "시간외 (20분)", OvertimeHours: 1.0 / 3},
		{Month: "1월", Name: "김철수", EmployeeID: "1001", Date: "2021-01-04", Category: model.CategoryDayOff, SubType: "연차 (1일)", DurationHours: 8, IsDayOff: true},
		{Month: "1월", Name: "김철수", EmployeeID: "1001", Date: "2021-01-06", Category: model.CategoryTrip, SubType: "관내출장 (1일 1시간)", DurationHours: 9},
		{Month: "2월", Name: "이영희", EmployeeID: "1002", Date: "2021-02-01", Category: model.CategoryOther, SubType: "교육"},
	}, []string{"1월", "2월"})
	return s
}

func TestExport_AllMonths(t *testing.T) {
	t.Parallel()

	var events []Progress
	f, err := NewExporter(seededStore()).Export(ExportOptions{
		Progress: func(p Progress) { events = append(events, p) },
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	if got := f.GetSheetList(); len(got) != 2 || got[0] != SummarySheet || got[1] != DetailSheet {
		t.Fatalf("unexpected sheets: %v", got)
	}

	rows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("want header + 3 summary rows, got=%d", len(rows))
	}
	// 가나다순
	if rows[1][1] != "김철수" || rows[2][1] != "홍길동" || rows[3][1] != "이영희" {
		t.Fatalf("unexpected order: %v / %v / %v", rows[1], rows[2], rows[3])
	}
	if rows[1][4] != "8" || rows[1][9] != "9" || rows[1][11] != "1" || rows[1][12] != "1" || rows[1][16] != "1" {
		t.Fatalf("unexpected 김철수 summary: %v", rows[1])
	}
	if rows[2][3] != "0.33" {
		t.Fatalf("overtime should be rounded, got=%s", rows[2][3])
	}

	detail, err := f.GetRows(DetailSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(detail) != 5 {
		t.Fatalf("want header + 4 detail rows, got=%d", len(detail))
	}
	if detail[1][4] != "휴가" || detail[1][8] != "Y" {
		t.Fatalf("unexpected detail row: %v", detail[1])
	}

	if len(events) != 3 || events[0].Percent() != 0 || events[1].Month != "1월" {
		t.Fatalf("unexpected progress events: %+v", events)
	}
	if last := events[len(events)-1]; !last.Finished() || last.Percent() != 100 || last.Month != "2월" {
		t.Fatalf("unexpected final progress: %+v", last)
	}
}

func TestExport_SingleMonth(t *testing.T) {
	t.Parallel()

	f, err := NewExporter(seededStore()).Export(ExportOptions{Month: "2월"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, _ := f.GetRows(SummarySheet)
	if len(rows) != 2 || rows[1][0] != "2월" || rows[1][10] != "1" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

// stubSource 호출마다 다른 세대를 돌려주는 저장소
type stubSource struct {
	calls int
	gens  []model.Snapshot
}

func (s *stubSource) Snapshot() model.Snapshot {
	snap := s.gens[s.calls%len(s.gens)]
	s.calls++
	return snap
}

func TestExport_ReadsOneGeneration(t *testing.T) {
	t.Parallel()

	gen := func(id string, hours float64) model.Snapshot {
		return model.Snapshot{
			Version: model.SnapshotVersion,
			Months:  []string{"1월"},
			Records: []model.AttendanceRecord{
				{Month: "1월", Name: "김철수", EmployeeID: id, Date: "2021-01-04", Category: model.CategoryOvertime, OvertimeHours: hours},
			},
		}
	}
	src := &stubSource{gens: []model.Snapshot{gen("A", 1), gen("B", 2)}}

	f, err := NewExporter(src).Export(ExportOptions{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	if src.calls != 1 {
		t.Fatalf("want a single snapshot read, got=%d", src.calls)
	}
	rows, _ := f.GetRows(SummarySheet)
	detail, _ := f.GetRows(DetailSheet)
	if len(rows) != 2 || rows[1][2] != "A" || rows[1][3] != "1" {
		t.Fatalf("unexpected summary: %v", rows)
	}
	if len(detail) != 2 || detail[1][2] != "A" || detail[1][6] != "1" {
		t.Fatalf("unexpected detail: %v", detail)
	}
}

func TestProgress_Percent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Progress
		want int
	}{
		{Progress{Done: 0, Total: 4}, 0},
		{Progress{Done: 1, Total: 3}, 33},
		{Progress{Done: 3, Total: 3}, 100},
		{Progress{}, 100},
	}
	for _, c := range cases {
		if got := c.in.Percent(); got != c.want {
			t.Fatalf("%+v want=%d got=%d", c.in, c.want, got)
		}
	}
}

func TestExport_NoData(t *testing.T) {
	t.Parallel()

	if _, err := NewExporter(memstore.NewMemoryStore()).Export(ExportOptions{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("want ErrNoData got=%v", err)
	}
	if _, err := NewExporter(seededStore()).Export(ExportOptions{Month: "3월"}); !errors.Is(err, ErrNoData) {
		t.Fatalf("want ErrNoData for unknown month got=%v", err)
	}
}
