package store

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"attendash/internal/calculator"
	"attendash/internal/model"
)

// ErrNotFound 해당 월/직원 데이터 없음
var ErrNotFound = errors.New("employee not found")

// MemoryStore 근태 레코드 메모리 저장소
//
// 레코드 목록과 직원 인덱스를 한 세대로 묶어 통째로 교체한다.
// 읽는 쪽은 항상 이전 세대 또는 새 세대 전체만 본다.
type MemoryStore struct {
	records []model.AttendanceRecord
	months  []string
	index   model.EmployeeIndex
	mu      sync.RWMutex
}

// NewMemoryStore 빈 저장소 생성
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: model.EmployeeIndex{},
	}
}

// Replace 레코드/월 목록 교체 후 인덱스 재구성
func (s *MemoryStore) Replace(records []model.AttendanceRecord, months []string) {
	recs := append([]model.AttendanceRecord(nil), records...)
	ms := mergeMonths(months, recs)
	idx := BuildEmployeeIndex(recs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = recs
	s.months = ms
	s.index = idx
}

// Restore 저장 문서로부터 복원 (인덱스는 Replace 와 같은 경로로 재구성)
func (s *MemoryStore) Restore(snap model.Snapshot) {
	s.Replace(snap.Records, snap.Months)
}

// Snapshot 현재 세대를 저장 문서로
func (s *MemoryStore) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Snapshot{
		Version: model.SnapshotVersion,
		Months:  append([]string(nil), s.months...),
		Records: append([]model.AttendanceRecord(nil), s.records...),
	}
}

// Clear 전체 삭제
func (s *MemoryStore) Clear() {
	s.Replace(nil, nil)
}

// Count 레코드 수
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Months 정렬된 월 목록
func (s *MemoryStore) Months() []string {
	s.mu.RLock()
	ms := append([]string(nil), s.months...)
	s.mu.RUnlock()

	SortMonths(ms)
	return ms
}

// HasMonth 월 존재 여부
func (s *MemoryStore) HasMonth(month string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.months {
		if m == month {
			return true
		}
	}
	return false
}

// Employees 해당 월 직원 이름 (한글 정렬)
func (s *MemoryStore) Employees(month string) []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.index[month]))
	for n := range s.index[month] {
		names = append(names, n)
	}
	s.mu.RUnlock()

	SortNames(names)
	return names
}

// MonthSize 월별 직원 수
type MonthSize struct {
	Month     string
	Employees int
}

// MonthSizes 정렬된 월 목록과 직원 수 (한 세대 기준)
func (s *MemoryStore) MonthSizes() []MonthSize {
	s.mu.RLock()
	ms := append([]string(nil), s.months...)
	counts := make(map[string]int, len(ms))
	for _, m := range ms {
		counts[m] = len(s.index[m])
	}
	s.mu.RUnlock()

	SortMonths(ms)
	out := make([]MonthSize, 0, len(ms))
	for _, m := range ms {
		out = append(out, MonthSize{Month: m, Employees: counts[m]})
	}
	return out
}

// EmployeeRef 성명 + 사번
type EmployeeRef struct {
	Name       string
	EmployeeID string
}

// Roster 해당 월 직원 (성명, 사번) 목록, 가나다순
func (s *MemoryStore) Roster(month string) []EmployeeRef {
	s.mu.RLock()
	ids := make(map[string]string, len(s.index[month]))
	names := make([]string, 0, len(s.index[month]))
	for n, id := range s.index[month] {
		ids[n] = id
		names = append(names, n)
	}
	s.mu.RUnlock()

	SortNames(names)
	out := make([]EmployeeRef, 0, len(names))
	for _, n := range names {
		out = append(out, EmployeeRef{Name: n, EmployeeID: ids[n]})
	}
	return out
}

// EmployeeID 사번 조회
func (s *MemoryStore) EmployeeID(month, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.index.Lookup(month, name)
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

// Records 해당 월/직원 레코드 (날짜순, 같은 날짜는 원래 순서 유지)
func (s *MemoryStore) Records(month, name string) []model.AttendanceRecord {
	s.mu.RLock()
	out := s.filterLocked(month, name)
	s.mu.RUnlock()

	SortByDate(out)
	return out
}

// EmployeeView 한 세대에서 읽은 직원 1명 · 1개월 데이터
type EmployeeView struct {
	EmployeeID string
	Records    []model.AttendanceRecord
	Summary    model.MonthlySummary
}

// Employee 사번/레코드/집계 조회 (읽기 잠금 한 번)
func (s *MemoryStore) Employee(month, name string) (EmployeeView, error) {
	s.mu.RLock()
	id, ok := s.index.Lookup(month, name)
	var recs []model.AttendanceRecord
	if ok {
		recs = s.filterLocked(month, name)
	}
	s.mu.RUnlock()

	if !ok {
		return EmployeeView{}, ErrNotFound
	}
	SortByDate(recs)
	summary := calculator.Summarize(recs)
	summary.Month = month
	summary.Name = name
	summary.EmployeeID = id
	return EmployeeView{EmployeeID: id, Records: recs, Summary: summary}, nil
}

// Summary 해당 월/직원 집계
func (s *MemoryStore) Summary(month, name string) (model.MonthlySummary, error) {
	v, err := s.Employee(month, name)
	if err != nil {
		return model.MonthlySummary{}, err
	}
	return v.Summary, nil
}

// filterLocked 호출자가 읽기 잠금을 쥔 상태에서 사용
func (s *MemoryStore) filterLocked(month, name string) []model.AttendanceRecord {
	var out []model.AttendanceRecord
	for _, r := range s.records {
		if r.Month == month && r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// SortByDate 날짜순 안정 정렬
func SortByDate(records []model.AttendanceRecord) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })
}

// BuildEmployeeIndex 레코드 전체를 한 번 훑어 월별 (성명 → 사번) 구성, 먼저 나온 값 유지
func BuildEmployeeIndex(records []model.AttendanceRecord) model.EmployeeIndex {
	idx := model.EmployeeIndex{}
	for _, r := range records {
		names, ok := idx[r.Month]
		if !ok {
			names = map[string]string{}
			idx[r.Month] = names
		}
		if _, seen := names[r.Name]; !seen {
			names[r.Name] = r.EmployeeID
		}
	}
	return idx
}

// mergeMonths 월 목록 + 레코드에만 있는 월 (중복 제거, 등장 순서 유지)
func mergeMonths(months []string, records []model.AttendanceRecord) []string {
	seen := make(map[string]bool, len(months))
	out := make([]string, 0, len(months))
	add := func(m string) {
		if m == "" || seen[m] {
			return
		}
		seen[m] = true
		out = append(out, m)
	}
	for _, m := range months {
		add(m)
	}
	for _, r := range records {
		add(r.Month)
	}
	return out
}

var monthNumberRe = regexp.MustCompile(`^(?:(\d{4})\s*[년.\-/]\s*)?(\d{1,2})\s*월?$`)

// monthKey "2024년 3월" / "3월" → (연도, 월)
func monthKey(label string) (year, month int, ok bool) {
	m := monthNumberRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	if m[1] != "" {
		year, _ = strconv.Atoi(m[1])
	}
	month, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// SortMonths 월 라벨 정렬: 숫자로 읽히는 라벨(연/월 순) 먼저, 나머지는 한글 정렬
func SortMonths(months []string) {
	col := collate.New(language.Korean)
	sort.SliceStable(months, func(i, j int) bool {
		yi, mi, oki := monthKey(months[i])
		yj, mj, okj := monthKey(months[j])
		switch {
		case oki && okj:
			if yi != yj {
				return yi < yj
			}
			if mi != mj {
				return mi < mj
			}
			return months[i] < months[j]
		case oki != okj:
			return oki
		}
		return col.CompareString(months[i], months[j]) < 0
	})
}

// SortNames 한글 가나다순 정렬
func SortNames(names []string) {
	col := collate.New(language.Korean)
	col.SortStrings(names)
}
