package calculator

import (
	"strings"

	"attendash/internal/model"
)

// 출장 세부 종류 접두어 (parser 의 SubType 과 동일)
const (
	tripLocal         = "관내출장"
	tripOutside       = "관외출장"
	tripInternational = "국외출장"
	tripDomestic      = "국내출장"
)

// Summarize 직원 1명 · 1개월 레코드를 집계 (입력은 변경하지 않음)
func Summarize(records []model.AttendanceRecord) model.MonthlySummary {
	var s model.MonthlySummary
	if len(records) > 0 {
		s.Month = records[0].Month
		s.Name = records[0].Name
		s.EmployeeID = records[0].EmployeeID
	}

	for _, r := range records {
		s.RecordCount++

		switch r.Category {
		case model.CategoryOvertime:
			s.OvertimeHours += r.OvertimeHours
		case model.CategoryDayOff:
			s.DayOffHours += r.DurationHours
		case model.CategorySickLeave:
			s.SickLeaveHours += r.DurationHours
		case model.CategoryEarlyLeave:
			s.EarlyLeaveHours += r.DurationHours
		case model.CategoryMaternityLeave:
			s.MaternityLeaveHours += r.DurationHours
		case model.CategoryPregnancyCheckup:
			s.PregnancyCheckupHours += r.DurationHours
		case model.CategoryTrip:
			s.TripCount++
			s.TripHours += r.DurationHours
		default:
			s.OtherCount++
		}

		countTrip(&s, r.SubType)
	}

	return s
}

func countTrip(s *model.MonthlySummary, subType string) {
	switch {
	case strings.HasPrefix(subType, tripLocal):
		s.LocalTripCount++
		s.DomesticCombinedTripCount++
	case strings.HasPrefix(subType, tripOutside):
		s.OutsideTripCount++
	case strings.HasPrefix(subType, tripInternational):
		s.InternationalTripCount++
	case strings.HasPrefix(subType, tripDomestic):
		s.DomesticTripCount++
		s.DomesticCombinedTripCount++
	}
}

// SummarizeMonth 한 달 전체를 직원별로 집계
func SummarizeMonth(records []model.AttendanceRecord, month string) map[string]model.MonthlySummary {
	byName := map[string][]model.AttendanceRecord{}
	for _, r := range records {
		if r.Month != month {
			continue
		}
		byName[r.Name] = append(byName[r.Name], r)
	}

	out := make(map[string]model.MonthlySummary, len(byName))
	for name, recs := range byName {
		out[name] = Summarize(recs)
	}
	return out
}
