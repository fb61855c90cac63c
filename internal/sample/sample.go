package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bxcodec/faker/v4"
	"github.com/xuri/excelize/v2"
)

// Headers 현행 내보내기 양식 헤더 (영문명/비고는 가져오기에서 무시)
var Headers = []string{"성명", "사번", "날짜", "시간외관리", "조기퇴근", "휴가관리", "출장관리", "영문명", "비고"}

var (
	surnames   = []string{"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임"}
	givenNames = []string{"민준", "서연", "도윤", "지우", "하준", "서윤", "예준", "하은", "지호", "수아", "철수", "영희"}

	leaveLabels = []string{"연차", "반차", "병가", "당해 대체휴무", "전년도 대체휴무", "임산부정기검진", "공가"}
	tripLabels  = []string{"관내출장", "관외출장", "국외출장", "국내출장"}
)

var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Options 생성 옵션
type Options struct {
	Year      int
	Months    []int // 1~12, 시트 이름은 "N월"
	Employees int
	Seed      uint64
	WithNotes bool // faker 문장으로 비고 채움
}

// DefaultOptions 기본 옵션
func DefaultOptions() Options {
	return Options{
		Year:      time.Now().Year(),
		Months:    []int{1, 2, 3},
		Employees: 10,
		Seed:      1,
		WithNotes: true,
	}
}

type employee struct {
	name    string
	id      string
	english string
}

// Generate 가상 근태 내보내기 통합문서 생성
func Generate(opts Options) (*excelize.File, error) {
	if opts.Employees <= 0 {
		return nil, fmt.Errorf("employees must be positive: %d", opts.Employees)
	}
	if len(opts.Months) == 0 {
		return nil, fmt.Errorf("at least one month is required")
	}
	for _, m := range opts.Months {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("invalid month: %d", m)
		}
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	staff := make([]employee, opts.Employees)
	for i := range staff {
		staff[i] = employee{
			name:    surnames[rng.IntN(len(surnames))] + givenNames[rng.IntN(len(givenNames))],
			id:      fmt.Sprintf("%d%03d", opts.Year, i+1),
			english: faker.Name(),
		}
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	for _, m := range opts.Months {
		sheet := fmt.Sprintf("%d월", m)
		if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := writeMonth(f, sheet, opts, m, staff, rng); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeMonth(f *excelize.File, sheet string, opts Options, month int, staff []employee, rng *rand.Rand) error {
	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, day := range workdays(opts.Year, time.Month(month)) {
		for _, e := range staff {
			values := []interface{}{
				e.name,
				e.id,
				day.Sub(serialEpoch).Hours() / 24,
				overtimeCell(rng),
				earlyLeaveCell(rng),
				leaveCell(rng),
				tripCell(rng, day),
				e.english,
				"",
			}
			if opts.WithNotes && rng.IntN(20) == 0 {
				values[8] = faker.Sentence()
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// workdays 해당 월 평일
func workdays(year int, month time.Month) []time.Time {
	var out []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}

func overtimeCell(rng *rand.Rand) string {
	if rng.IntN(4) != 0 {
		return ""
	}
	return fmt.Sprintf("신청시각: 18:00\n총시간:%d:%02d", 1+rng.IntN(3), 10*rng.IntN(6))
}

func earlyLeaveCell(rng *rand.Rand) string {
	if rng.IntN(15) != 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", 1+rng.IntN(2), 30*rng.IntN(2))
}

func leaveCell(rng *rand.Rand) string {
	if rng.IntN(10) != 0 {
		return ""
	}
	label := leaveLabels[rng.IntN(len(leaveLabels))]
	duration := "1일"
	if label == "반차" {
		duration = "4시간"
	}
	return fmt.Sprintf("종별: %s\n일수/시간: %s", label, duration)
}

func tripCell(rng *rand.Rand, day time.Time) string {
	if rng.IntN(12) != 0 {
		return ""
	}
	label := tripLabels[rng.IntN(len(tripLabels))]
	from := day.Add(9 * time.Hour)
	to := from.Add(time.Duration(2+rng.IntN(8)) * time.Hour)
	return fmt.Sprintf("종별: %s\n부터: %s\n까지: %s", label, from.Format("2006-01-02 15:04"), to.Format("2006-01-02 15:04"))
}
