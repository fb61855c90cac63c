package calculator

import (
	"reflect"
	"testing"

	"attendash/internal/model"
)

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil); !reflect.DeepEqual(got, model.MonthlySummary{}) {
		t.Fatalf("expected zero summary, got=%+v", got)
	}
}

func TestSummarize_Buckets(t *testing.T) {
	t.Parallel()

	base := model.AttendanceRecord{Month: "1월", Name: "김철수", EmployeeID: "1001", Date: "2021-01-04"}
	with := func(f func(r *model.AttendanceRecord)) model.AttendanceRecord {
		r := base
		f(&r)
		return r
	}

	records := []model.AttendanceRecord{
		with(func(r *model.AttendanceRecord) { r.Category = model.CategoryOvertime; r.OvertimeHours = 2.5 }),
		with(func(r *model.AttendanceRecord) { r.Category = model.CategoryEarlyLeave; r.DurationHours = 1 }),
		with(func(r *model.AttendanceRecord) {
			r.Category = model.CategoryDayOff
			r.DurationHours = 8
			r.IsDayOff = true
		}),
	}
	before := append([]model.AttendanceRecord(nil), records...)

	got := Summarize(records)
	if got.OvertimeHours != 2.5 || got.EarlyLeaveHours != 1 || got.DayOffHours != 8 {
		t.Fatalf("unexpected hours: %+v", got)
	}
	if got.SickLeaveHours != 0 || got.MaternityLeaveHours != 0 || got.PregnancyCheckupHours != 0 ||
		got.TripCount != 0 || got.TripHours != 0 || got.OtherCount != 0 {
		t.Fatalf("unexpected non-zero bucket: %+v", got)
	}
	if got.Month != "1월" || got.Name != "김철수" || got.EmployeeID != "1001" || got.RecordCount != 3 {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if !reflect.DeepEqual(before, records) {
		t.Fatalf("input mutated")
	}
}

func TestSummarize_TripCounters(t *testing.T) {
	t.Parallel()

	trip := func(sub string, h float64) model.AttendanceRecord {
		return model.AttendanceRecord{Category: model.CategoryTrip, SubType: sub, DurationHours: h}
	}
	got := Summarize([]model.AttendanceRecord{
		trip("관내출장 (1일 1시간)", 9),
		trip("관내출장", 0),
		trip("국내출장 (4시간)", 4),
		trip("관외출장", 0),
		trip("국외출장", 0),
		trip("출장", 0),
	})

	if got.TripCount != 6 || got.TripHours != 13 {
		t.Fatalf("trip totals: %+v", got)
	}
	if got.LocalTripCount != 2 || got.DomesticTripCount != 1 || got.DomesticCombinedTripCount != 3 {
		t.Fatalf("domestic counters: %+v", got)
	}
	if got.OutsideTripCount != 1 || got.InternationalTripCount != 1 {
		t.Fatalf("other trip counters: %+v", got)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := model.AttendanceRecord{Category: model.CategorySickLeave, DurationHours: 4}
	b := model.AttendanceRecord{Category: model.CategorySickLeave, DurationHours: 0.5}
	c := model.AttendanceRecord{Category: model.CategoryOther, SubType: "교육"}

	x := Summarize([]model.AttendanceRecord{a, b, c})
	y := Summarize([]model.AttendanceRecord{c, b, a})
	if x.SickLeaveHours != y.SickLeaveHours || x.OtherCount != y.OtherCount || x.SickLeaveHours != 4.5 {
		t.Fatalf("order dependent: %+v vs %+v", x, y)
	}
}

func TestSummarizeMonth(t *testing.T) {
	t.Parallel()

	got := SummarizeMonth([]model.AttendanceRecord{
		{Month: "1월", Name: "A", Category: model.CategoryOvertime, OvertimeHours: 1},
		{Month: "1월", Name: "B", Category: model.CategoryOvertime, OvertimeHours: 2},
		{Month: "2월", Name: "A", Category: model.CategoryOvertime, OvertimeHours: 4},
		{Month: "1월", Name: "A", Category: model.CategoryOvertime, OvertimeHours: 3},
	}, "1월")

	if len(got) != 2 || got["A"].OvertimeHours != 4 || got["B"].OvertimeHours != 2 {
		t.Fatalf("unexpected: %+v", got)
	}
}
