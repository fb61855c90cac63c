package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"attendash/internal/model"
)

// HoursPerDay "N일" 환산 기준 시간
const HoursPerDay = 8

// 스프레드시트 날짜 일련번호 기준일 (1 = 1899-12-31)
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial 9999-12-31 의 일련번호
const maxSerial = 2958465

var (
	parenSuffixRe = regexp.MustCompile(`[(（][^)）]*[)）]`)
	clockRe       = regexp.MustCompile(`(\d+)\s*:\s*(\d{1,2})`)
	decimalRe     = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	daysRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*일`)
	hoursRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*시간`)
	minutesRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*분`)

	timestampRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{1,2}):(\d{2})`)
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"2006.1.2",
	"2006. 1. 2.",
	"2006. 1. 2",
	"20060102",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006년 1월 2일",
	time.RFC3339,
}

// overtimeLabels 시간외 셀 내 합계 항목 (긴 이름부터 매칭)
var overtimeLabels = []string{"총시간외", "시간외시간", "총시간", "실근무"}

// structuredMarkers 다항목 블록 표식
var structuredMarkers = []string{"신청시각", "종별"}

var overtimeLabelRe = regexp.MustCompile(`(?:` + strings.Join(overtimeLabels, "|") + `)\s*[:：]\s*([^\n\r]+)`)

// ParseDate 셀 값을 날짜로 변환 (실패 시 false)
func ParseDate(v model.CellValue) (time.Time, bool) {
	switch v.Kind {
	case model.CellDate:
		if v.Time.IsZero() {
			return time.Time{}, false
		}
		return v.Time, true
	case model.CellNumber:
		return serialDate(v.Number)
	case model.CellString:
		return parseDateText(v.Text)
	}
	return time.Time{}, false
}

// serialDate 정수부는 일 단위, 소수부는 하루 중 시각
func serialDate(n float64) (time.Time, bool) {
	if math.IsNaN(n) || n < 0 || n >= maxSerial+1 {
		return time.Time{}, false
	}
	days := math.Floor(n)
	frac := time.Duration(math.Round((n - days) * 86400 * float64(time.Second)))
	return serialEpoch.AddDate(0, 0, int(days)).Add(frac), true
}

func parseDateText(text string) (time.Time, bool) {
	s := strings.TrimSpace(parenSuffixRe.ReplaceAllString(text, ""))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate ISO 날짜 또는 대체 표기
func FormatDate(t time.Time, ok bool) string {
	if !ok {
		return model.UnknownDate
	}
	return t.Format("2006-01-02")
}

// ParseClockDuration "H:MM" / 숫자 텍스트를 시간 단위로 변환 (날짜 셀은 0)
func ParseClockDuration(v model.CellValue) float64 {
	switch {
	case v.IsBlank(), v.Kind == model.CellDate:
		return 0
	case v.Kind == model.CellNumber:
		return nonNegative(v.Number)
	}
	return parseClockText(v.Text)
}

func parseClockText(text string) float64 {
	if m := clockRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return float64(h) + float64(mins)/60
	}
	if m := decimalRe.FindString(text); m != "" {
		n, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return nonNegative(n)
		}
	}
	return 0
}

// ParseLabeledDuration "N일 N시간 N분" 문구를 시간 단위로 변환
func ParseLabeledDuration(text string) float64 {
	days := captureFloat(daysRe, text)
	hours := captureFloat(hoursRe, text)
	minutes := captureFloat(minutesRe, text)
	return days*HoursPerDay + hours + minutes/60
}

func captureFloat(re *regexp.Regexp, text string) float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseOvertimeCell 시간외 셀에서 총 시간외 시간을 추출
func ParseOvertimeCell(v model.CellValue) float64 {
	switch {
	case v.IsBlank(), v.Kind == model.CellDate:
		return 0
	case v.Kind == model.CellNumber:
		return nonNegative(v.Number)
	}
	text := strings.TrimSpace(v.Text)
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return nonNegative(n)
	}
	if m := overtimeLabelRe.FindStringSubmatch(text); m != nil {
		return parseClockText(m[1])
	}
	if ContainsAny(text, structuredMarkers) {
		return 0
	}
	return parseClockText(text)
}

// ParseTimestampRange "부터"/"까지" 줄의 시각 차이 (시간 단위, 음수는 0)
func ParseTimestampRange(fromLine, toLine string) float64 {
	from, ok := parseTimestamp(fromLine)
	if !ok {
		return 0
	}
	to, ok := parseTimestamp(toLine)
	if !ok {
		return 0
	}
	diff := to.Sub(from).Hours()
	if diff <= 0 {
		return 0
	}
	return diff
}

func parseTimestamp(line string) (time.Time, bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02 15:04", m[1]+" "+m[2]+":"+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatHours 시간을 "N일 N시간 N분" 으로 표기 (1일 = HoursPerDay)
func FormatHours(hours float64) string {
	if hours <= 0 {
		return "0분"
	}
	totalMinutes := int(math.Round(hours * 60))
	perDay := HoursPerDay * 60
	days := totalMinutes / perDay
	h := (totalMinutes % perDay) / 60
	m := totalMinutes % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d일", days))
	}
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d시간", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d분", m))
	}
	if len(parts) == 0 {
		return "0분"
	}
	return strings.Join(parts, " ")
}

func nonNegative(n float64) float64 {
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	return n
}
