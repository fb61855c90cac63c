package parser

import (
	"strings"

	"attendash/internal/model"
)

// Alias 논리 필드별 헤더 후보 (앞쪽 우선)
//
// 구버전/현행 내보내기 양식의 헤더 표기가 다르다.
type Alias []string

var (
	NameAliases       = Alias{"성명", "이름"}
	EmployeeIDAliases = Alias{"사번", "사원번호", "직원번호"}
	DateAliases       = Alias{"날짜", "일자", "근무일자"}
	OvertimeAliases   = Alias{"시간외관리", "시간외(시간)", "시간외"}
	EarlyLeaveAliases = Alias{"조기퇴근", "조퇴시간", "조퇴"}
	LeaveAliases      = Alias{"휴가관리", "근태유형", "유형"}
	TripAliases       = Alias{"출장관리", "출장"}
)

// Resolve 첫 번째로 존재하는 헤더 값 (빈 문자열이어도 존재하면 채택)
func (a Alias) Resolve(row model.Row) (model.CellValue, bool) {
	for _, key := range a {
		if v, ok := row[key]; ok {
			return v, true
		}
	}
	return model.EmptyCell(), false
}

// ResolvedRow 별칭 해석이 끝난 행
type ResolvedRow struct {
	Name       string
	EmployeeID string
	Date       model.CellValue
	Overtime   model.CellValue
	EarlyLeave model.CellValue
	Leave      string
	Trip       string
}

// ResolveRow 행을 강타입 중간 구조로 변환
func ResolveRow(row model.Row) ResolvedRow {
	text := func(a Alias) string {
		v, _ := a.Resolve(row)
		return NormalizeText(v.String())
	}
	cell := func(a Alias) model.CellValue {
		v, _ := a.Resolve(row)
		return v
	}

	r := ResolvedRow{
		Name:       text(NameAliases),
		EmployeeID: text(EmployeeIDAliases),
		Date:       cell(DateAliases),
		Overtime:   cell(OvertimeAliases),
		EarlyLeave: cell(EarlyLeaveAliases),
		Leave:      text(LeaveAliases),
		Trip:       text(TripAliases),
	}
	if r.EmployeeID == "" {
		r.EmployeeID = model.UnknownEmployeeID
	}
	return r
}

// TransformRow 행 1개 → 근태 레코드 0개 이상
func TransformRow(row model.Row, month string) []model.AttendanceRecord {
	return TransformResolved(ResolveRow(row), month)
}

// TransformResolved 별칭 해석이 끝난 행을 변환 (성명이 없으면 nil)
func TransformResolved(r ResolvedRow, month string) []model.AttendanceRecord {
	if r.Name == "" {
		return nil
	}

	base := model.AttendanceRecord{
		Month:      month,
		Name:       r.Name,
		EmployeeID: r.EmployeeID,
		Date:       FormatDate(ParseDate(r.Date)),
	}

	var out []model.AttendanceRecord

	if h := ParseOvertimeCell(r.Overtime); h > 0 {
		rec := base
		rec.Category = model.CategoryOvertime
		rec.SubType = annotate(model.CategoryOvertime.Label(), h)
		rec.OvertimeHours = h
		out = append(out, rec)
	}

	if h := ParseClockDuration(r.EarlyLeave); h > 0 {
		rec := base
		rec.Category = model.CategoryEarlyLeave
		rec.SubType = annotate(model.CategoryEarlyLeave.Label(), h)
		rec.DurationHours = h
		out = append(out, rec)
	}

	for _, e := range SplitEntries(r.Leave) {
		h := ParseLabeledDuration(e.DurationText)
		out = append(out, newEntryRecord(base, Classify(e.Label, h), h))
	}

	for _, e := range SplitEntries(r.Trip) {
		h := ParseTimestampRange(e.From, e.To)
		c := Classify(e.Label, h)
		if c.Category == model.CategoryTrip {
			c.SubType = annotate(c.SubType, h)
		}
		out = append(out, newEntryRecord(base, c, h))
	}

	return out
}

func newEntryRecord(base model.AttendanceRecord, c Classification, hours float64) model.AttendanceRecord {
	rec := base
	rec.Category = c.Category
	rec.SubType = c.SubType
	rec.IsDayOff = c.IsDayOff
	rec.DurationHours = hours
	return rec
}

// HasAnyColumn 시트 헤더에 근태 컬럼이 하나라도 있는지
func HasAnyColumn(headers []string) bool {
	all := []Alias{NameAliases, EmployeeIDAliases, DateAliases, OvertimeAliases, EarlyLeaveAliases, LeaveAliases, TripAliases}
	for _, h := range headers {
		h = strings.TrimSpace(h)
		for _, aliases := range all {
			for _, a := range aliases {
				if h == a {
					return true
				}
			}
		}
	}
	return false
}
