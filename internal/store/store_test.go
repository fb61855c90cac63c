package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"attendash/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "attendash.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	snap := model.Snapshot{
		Version: model.SnapshotVersion,
		Months:  []string{"2월", "1월"},
		Records: []model.AttendanceRecord{
			{Month: "2월", Name: "김철수", EmployeeID: "1001", Date: "2024-02-01", Category: model.CategoryOvertime, SubType: "시간외 (2시간 30분)", OvertimeHours: 2.5},
			{Month: "1월", Name: "이영희", EmployeeID: model.UnknownEmployeeID, Date: model.UnknownDate, Category: model.CategoryDayOff, SubType: "연차 (1일)", DurationHours: 8, IsDayOff: true},
		},
	}
	if err := st.SaveSnapshot(snap, "imp-1"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.LoadSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, snap)
	}

	// 두 번째 저장은 이전 세대를 완전히 대체
	if err := st.SaveSnapshot(model.Snapshot{Months: []string{"3월"}}, "imp-2"); err != nil {
		t.Fatalf("save: %v", err)
	}
	n, err := st.CountRecords()
	if err != nil || n != 0 {
		t.Fatalf("count=%d err=%v", n, err)
	}
	stats, err := st.ListMonthStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Month != "3월" || stats[0].Records != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestListMonthStats(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	records := []model.AttendanceRecord{
		{Month: "1월", Name: "A", Category: model.CategoryOther},
		{Month: "1월", Name: "A", Category: model.CategoryOther},
		{Month: "1월", Name: "B", Category: model.CategoryOther},
	}
	if err := st.SaveSnapshot(model.Snapshot{Months: []string{"1월"}, Records: records}, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	stats, err := st.ListMonthStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Employees != 2 || stats[0].Records != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := st.ClearData(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if stats, _ := st.ListMonthStats(); len(stats) != 0 {
		t.Fatalf("expected empty stats after clear: %+v", stats)
	}
}

func TestImportLog(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if l, err := st.LastImportLog(); err != nil || l != nil {
		t.Fatalf("expected no log, got=%+v err=%v", l, err)
	}

	id, err := st.CreateImportLog("imp-1", "근태.xlsx", 1024, "abc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.UpdateImportLog(id, ImportLogUpdate{
		Status:         "done",
		TotalSheets:    2,
		ImportedSheets: 1,
		SkippedSheets:  1,
		TotalRows:      10,
		SkippedRows:    1,
		TotalRecords:   12,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := st.InsertSheetMeta(SheetMeta{ImportLogID: id, SheetName: "1월", TotalRows: 10, Status: "imported", ColumnsJSON: BuildColumnsJSON([]string{"성명"})}); err != nil {
		t.Fatalf("sheet meta: %v", err)
	}

	l, err := st.LastImportLog()
	if err != nil || l == nil {
		t.Fatalf("last log: %+v err=%v", l, err)
	}
	if l.ImportID != "imp-1" || l.Status != "done" || l.TotalRecords != 12 || l.CompletedAt == nil {
		t.Fatalf("unexpected log: %+v", l)
	}

	var metaCount int
	if err := st.QueryRow("SELECT COUNT(*) FROM sheets_meta WHERE import_log_id = ?", id).Scan(&metaCount); err != nil {
		t.Fatalf("count sheets_meta: %v", err)
	}
	if metaCount != 1 {
		t.Fatalf("unexpected sheets_meta count: %d", metaCount)
	}
}

func TestSelectedMonth(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if m, err := st.GetSelectedMonth(); err != nil || m != "" {
		t.Fatalf("expected empty, got=%q err=%v", m, err)
	}
	if err := st.SetSelectedMonth("3월"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.SetSelectedMonth("4월"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if m, _ := st.GetSelectedMonth(); m != "4월" {
		t.Fatalf("want 4월 got=%q", m)
	}
}
