package model

// MonthlySummary 직원 1명 · 1개월 집계 (요청 시 계산, 저장하지 않음)
type MonthlySummary struct {
	Month      string `json:"month"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`

	OvertimeHours         float64 `json:"overtimeHours"`
	DayOffHours           float64 `json:"dayOffHours"`
	SickLeaveHours        float64 `json:"sickLeaveHours"`
	EarlyLeaveHours       float64 `json:"earlyLeaveHours"`
	MaternityLeaveHours   float64 `json:"maternityLeaveHours"`
	PregnancyCheckupHours float64 `json:"pregnancyCheckupHours"`
	TripHours             float64 `json:"tripHours"`
	OtherCount            int     `json:"otherCount"`

	// 출장 종류별 건수
	TripCount                 int `json:"tripCount"`
	LocalTripCount            int `json:"localTripCount"`
	OutsideTripCount          int `json:"outsideTripCount"`
	InternationalTripCount    int `json:"internationalTripCount"`
	DomesticTripCount         int `json:"domesticTripCount"`
	DomesticCombinedTripCount int `json:"domesticCombinedTripCount"` // 관내 + 국내

	RecordCount int `json:"recordCount"`
}
