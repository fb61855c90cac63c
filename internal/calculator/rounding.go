package calculator

import (
	"github.com/shopspring/decimal"

	"attendash/internal/model"
)

// HourPlaces 표시용 시간 소수 자릿수
const HourPlaces = 2

// RoundHours 시간 값 반올림 (half away from zero)
func RoundHours(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(HourPlaces).Float64()
	return f
}

// RoundSummary 시간 항목만 반올림한 사본 (건수는 그대로)
func RoundSummary(s model.MonthlySummary) model.MonthlySummary {
	s.OvertimeHours = RoundHours(s.OvertimeHours)
	s.DayOffHours = RoundHours(s.DayOffHours)
	s.SickLeaveHours = RoundHours(s.SickLeaveHours)
	s.EarlyLeaveHours = RoundHours(s.EarlyLeaveHours)
	s.MaternityLeaveHours = RoundHours(s.MaternityLeaveHours)
	s.PregnancyCheckupHours = RoundHours(s.PregnancyCheckupHours)
	s.TripHours = RoundHours(s.TripHours)
	return s
}
