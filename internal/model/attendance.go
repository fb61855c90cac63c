package model

// Category 근태 분류
type Category string

const (
	CategoryOvertime         Category = "overtime"          // 시간외
	CategoryDayOff           Category = "day_off"           // 휴가/대체휴무
	CategorySickLeave        Category = "sick_leave"        // 병가
	CategoryEarlyLeave       Category = "early_leave"       // 조기퇴근
	CategoryMaternityLeave   Category = "maternity_leave"   // 산전후휴가
	CategoryPregnancyCheckup Category = "pregnancy_checkup" // 임산부정기검진
	CategoryTrip             Category = "trip"              // 출장
	CategoryOther            Category = "other"             // 기타
)

var categoryLabels = map[Category]string{
	CategoryOvertime:         "시간외",
	CategoryDayOff:           "휴가",
	CategorySickLeave:        "병가",
	CategoryEarlyLeave:       "조기퇴근",
	CategoryMaternityLeave:   "산전후휴가",
	CategoryPregnancyCheckup: "임산부정기검진",
	CategoryTrip:             "출장",
	CategoryOther:            "기타",
}

// Label 화면 표시용 한글 이름
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryOther]
}

// Valid 정의된 분류인지 여부
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// 식별 불가 값 대체 표기
const (
	UnknownEmployeeID = "-"
	UnknownDate       = "-"
)

// AttendanceRecord 정규화된 근태 이벤트 (생성 후 변경하지 않음)
type AttendanceRecord struct {
	Month      string   `json:"month"`
	Name       string   `json:"name"`
	EmployeeID string   `json:"employeeId"`
	Date       string   `json:"date"`
	Category   Category `json:"category"`
	SubType    string   `json:"subType"`

	OvertimeHours float64 `json:"overtimeHours"` // 시간외 레코드에만 채움
	DurationHours float64 `json:"durationHours"` // 휴가/출장 등 기간
	IsDayOff      bool    `json:"isDayOff"`
}

// EmployeeIndex 월 → (성명 → 사번)
type EmployeeIndex map[string]map[string]string

// Lookup 사번 조회
func (idx EmployeeIndex) Lookup(month, name string) (string, bool) {
	names, ok := idx[month]
	if !ok {
		return "", false
	}
	id, ok := names[name]
	return id, ok
}
