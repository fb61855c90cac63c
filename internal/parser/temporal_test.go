package parser

import (
	"math"
	"testing"
	"time"

	"attendash/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseDate_Serial(t *testing.T) {
	t.Parallel()

	got, ok := ParseDate(model.NumberCell(1))
	if !ok {
		t.Fatalf("expected ok")
	}
	if s := got.Format("2006-01-02"); s != "1899-12-31" {
		t.Fatalf("serial 1 want=1899-12-31 got=%s", s)
	}

	got, ok = ParseDate(model.NumberCell(45352))
	if !ok || got.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("serial 45352 got=%v ok=%v", got, ok)
	}
}

func TestParseDate_SerialBounds(t *testing.T) {
	t.Parallel()

	got, ok := ParseDate(model.NumberCell(44200.5))
	if !ok || got.Format("2006-01-02 15:04") != "2021-01-04 12:00" {
		t.Fatalf("fractional serial got=%v ok=%v", got, ok)
	}

	got, ok = ParseDate(model.NumberCell(200000))
	if !ok || got.Format("2006-01-02") != "2447-07-30" {
		t.Fatalf("large serial got=%v ok=%v", got, ok)
	}

	got, ok = ParseDate(model.NumberCell(2958465))
	if !ok || got.Format("2006-01-02") != "9999-12-31" {
		t.Fatalf("max serial got=%v ok=%v", got, ok)
	}

	for _, n := range []float64{2958466, 73000000, -1, math.Inf(1), math.NaN()} {
		if got, ok := ParseDate(model.NumberCell(n)); ok {
			t.Fatalf("serial %v should be rejected got=%v", n, got)
		}
	}
	if got := FormatDate(ParseDate(model.NumberCell(1e12))); got != model.UnknownDate {
		t.Fatalf("huge serial want sentinel got=%s", got)
	}
}

func TestParseDate_StringWithWeekdaySuffix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-04(월)", "2024-03-04"},
		{" 2024-03-04 (月) ", "2024-03-04"},
		{"2024.3.4（월）", "2024-03-04"},
		{"2024/03/04", "2024-03-04"},
		{"2024년 3월 4일 (월)", "2024-03-04"},
	}
	for _, c := range cases {
		got, ok := ParseDate(model.StringCell(c.in))
		if !ok {
			t.Fatalf("%q: expected ok", c.in)
		}
		if s := got.Format("2006-01-02"); s != c.want {
			t.Fatalf("%q want=%s got=%s", c.in, c.want, s)
		}
	}
}

func TestParseDate_Unknown(t *testing.T) {
	t.Parallel()

	for _, v := range []model.CellValue{
		model.EmptyCell(),
		model.StringCell(""),
		model.StringCell("(월)"),
		model.StringCell("어제"),
	} {
		if _, ok := ParseDate(v); ok {
			t.Fatalf("%+v: expected unknown", v)
		}
	}

	if got := FormatDate(ParseDate(model.StringCell("모름"))); got != model.UnknownDate {
		t.Fatalf("want sentinel got=%s", got)
	}
}

func TestParseDate_NativeDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	got, ok := ParseDate(model.DateCell(d))
	if !ok || !got.Equal(d) {
		t.Fatalf("got=%v ok=%v", got, ok)
	}
}

func TestParseClockDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   model.CellValue
		want float64
	}{
		{model.StringCell("09:30"), 9.5},
		{model.StringCell("1:00"), 1},
		{model.StringCell(""), 0},
		{model.EmptyCell(), 0},
		{model.NumberCell(1.25), 1.25},
		{model.StringCell("약 2.5시간"), 2.5},
		{model.StringCell("없음"), 0},
		{model.StringCell("   "), 0},
		{model.DateCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), 0},
	}
	for _, c := range cases {
		if got := ParseClockDuration(c.in); !almostEqual(got, c.want) {
			t.Fatalf("%+v want=%v got=%v", c.in, c.want, got)
		}
	}
}

func TestParseLabeledDuration(t *testing.T) {
	t.Parallel()

	if got := ParseLabeledDuration("2일 3시간 30분"); got != 2*HoursPerDay+3+0.5 {
		t.Fatalf("want=19.5 got=%v", got)
	}
	if got := ParseLabeledDuration("1일"); got != 8 {
		t.Fatalf("want=8 got=%v", got)
	}
	if got := ParseLabeledDuration("4시간"); got != 4 {
		t.Fatalf("want=4 got=%v", got)
	}
	if got := ParseLabeledDuration("30분"); got != 0.5 {
		t.Fatalf("want=0.5 got=%v", got)
	}
	if got := ParseLabeledDuration(""); got != 0 {
		t.Fatalf("want=0 got=%v", got)
	}
	if got := ParseLabeledDuration("반나절"); got != 0 {
		t.Fatalf("want=0 got=%v", got)
	}
}

func TestParseOvertimeCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   model.CellValue
		want float64
	}{
		{"number", model.NumberCell(3), 3},
		{"numeric text", model.StringCell("1.5"), 1.5},
		{"total label", model.StringCell("총시간:2:30"), 2.5},
		{"total overtime label", model.StringCell("신청시각: 2024-03-01 18:00\n총시간외: 3:15"), 3.25},
		{"overtime hours label", model.StringCell("시간외시간 : 2"), 2},
		{"actual work label", model.StringCell("실근무：1:45"), 1.75},
		{"structured block", model.StringCell("종별: 연장근무\n신청시각: 2024-03-01 18:00"), 0},
		{"plain clock", model.StringCell("02:00"), 2},
		{"empty", model.StringCell("  "), 0},
		{"empty cell", model.EmptyCell(), 0},
		{"date cell", model.DateCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), 0},
	}
	for _, c := range cases {
		if got := ParseOvertimeCell(c.in); !almostEqual(got, c.want) {
			t.Fatalf("%s: want=%v got=%v", c.name, c.want, got)
		}
	}
}

func TestParseTimestampRange(t *testing.T) {
	t.Parallel()

	from := "부터: 2024-03-01 09:00"
	to := "까지: 2024-03-01 18:00"
	if got := ParseTimestampRange(from, to); got != 9 {
		t.Fatalf("want=9 got=%v", got)
	}
	if got := ParseTimestampRange(to, from); got != 0 {
		t.Fatalf("reversed want=0 got=%v", got)
	}
	if got := ParseTimestampRange(from, ""); got != 0 {
		t.Fatalf("missing to want=0 got=%v", got)
	}
	if got := ParseTimestampRange("부터: 2024-03-01 9:30", "까지: 2024-03-02 9:30"); got != 24 {
		t.Fatalf("overnight want=24 got=%v", got)
	}
}

func TestFormatHours(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:    "0분",
		0.5:  "30분",
		8:    "1일",
		9.5:  "1일 1시간 30분",
		19.5: "2일 3시간 30분",
	}
	for in, want := range cases {
		if got := FormatHours(in); got != want {
			t.Fatalf("%v want=%q got=%q", in, want, got)
		}
	}
}
