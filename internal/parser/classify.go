package parser

import (
	"strings"

	"attendash/internal/model"
)

// 출장 세부 종류 (SubType 접두어로 사용)
const (
	TripLocal         = "관내출장"
	TripOutside       = "관외출장"
	TripInternational = "국외출장"
	TripDomestic      = "국내출장"
	tripKeyword       = "출장"
)

// 대체휴무 세부 종류
const (
	DayOffPrevYearSubstitute = "전년도대체휴무"
	DayOffSubstitute         = "당해대체휴무"
)

// generalLeaveKeywords 일반 휴가로 보는 키워드
var generalLeaveKeywords = []string{"휴가", "휴무", "연차", "연가", "반차", "반가", "월차", "공가"}

// Classification 분류 결과
type Classification struct {
	Category model.Category `json:"category"`
	SubType  string         `json:"subType"`
	IsDayOff bool           `json:"isDayOff"`
}

// labelInput 규칙 평가 입력
type labelInput struct {
	raw      string  // 원본 라벨
	stripped string  // 공백 제거 라벨
	hours    float64 // 계산된 기간
}

// rule 우선순위 규칙 (위에서부터 평가, 첫 일치 적용)
type rule struct {
	name  string
	match func(in labelInput) bool
	build func(in labelInput) Classification
}

func contains(kw string) func(labelInput) bool {
	return func(in labelInput) bool { return strings.Contains(in.stripped, kw) }
}

func fixed(category model.Category, subType string) func(labelInput) Classification {
	return func(labelInput) Classification {
		return Classification{Category: category, SubType: subType}
	}
}

func strippedAs(category model.Category) func(labelInput) Classification {
	return func(in labelInput) Classification {
		return Classification{Category: category, SubType: in.stripped}
	}
}

// annotatedAs 공백 제거 라벨 + 기간 표기
func annotatedAs(category model.Category) func(labelInput) Classification {
	return func(in labelInput) Classification {
		return Classification{Category: category, SubType: annotate(in.stripped, in.hours)}
	}
}

func dayOff(subType string) func(labelInput) Classification {
	return func(labelInput) Classification {
		return Classification{Category: model.CategoryDayOff, SubType: subType, IsDayOff: true}
	}
}

// rules 순서가 곧 우선순위 (뒤 규칙일수록 일반적)
var rules = []rule{
	{name: "sick", match: contains("병가"), build: annotatedAs(model.CategorySickLeave)},
	{name: "maternity", match: contains("산전후휴가"), build: annotatedAs(model.CategoryMaternityLeave)},
	{name: "pregnancy", match: contains("임산부정기검진"), build: annotatedAs(model.CategoryPregnancyCheckup)},
	{name: "early_leave", match: contains("조퇴"), build: annotatedAs(model.CategoryEarlyLeave)},

	{name: "trip_local", match: contains(TripLocal), build: fixed(model.CategoryTrip, TripLocal)},
	{name: "trip_outside", match: contains(TripOutside), build: fixed(model.CategoryTrip, TripOutside)},
	{name: "trip_international", match: contains(TripInternational), build: fixed(model.CategoryTrip, TripInternational)},
	{name: "trip_domestic", match: contains(TripDomestic), build: fixed(model.CategoryTrip, TripDomestic)},
	{name: "trip", match: contains(tripKeyword), build: strippedAs(model.CategoryTrip)},

	{
		name: "prev_year_substitute",
		match: func(in labelInput) bool {
			return strings.Contains(in.stripped, "전년도") && strings.Contains(in.stripped, "대체휴무")
		},
		build: dayOff(DayOffPrevYearSubstitute),
	},
	{name: "substitute", match: contains("대체휴무"), build: dayOff(DayOffSubstitute)},
	{
		name: "leave",
		match: func(in labelInput) bool {
			return ContainsAny(in.stripped, generalLeaveKeywords)
		},
		build: func(in labelInput) Classification {
			return Classification{
				Category: model.CategoryDayOff,
				SubType:  annotate(in.stripped, in.hours),
				IsDayOff: true,
			}
		},
	},
}

// Classify 라벨을 (분류, 세부종류) 로 변환
func Classify(rawLabel string, durationHours float64) Classification {
	in := labelInput{
		raw:      rawLabel,
		stripped: StripSpaces(NormalizeText(rawLabel)),
		hours:    durationHours,
	}
	if in.stripped != "" {
		for _, r := range rules {
			if r.match(in) {
				return r.build(in)
			}
		}
	}
	return Classification{Category: model.CategoryOther, SubType: rawLabel}
}

// annotate 기간이 있으면 "라벨 (N일 N시간)" 형태로
func annotate(label string, hours float64) string {
	if hours <= 0 {
		return label
	}
	return label + " (" + FormatHours(hours) + ")"
}
