package store

import "fmt"

// MonthStat 월별 저장 현황
type MonthStat struct {
	Month     string `json:"month"`
	Employees int    `json:"employees"`
	Records   int    `json:"records"`
}

// ListMonthStats 저장된 월 목록과 직원/레코드 수 (저장 순서)
func (s *Store) ListMonthStats() ([]MonthStat, error) {
	rows, err := s.db.Query(`
		SELECT
			m.label,
			(SELECT COUNT(DISTINCT name) FROM attendance_records WHERE month = m.label) AS employees,
			(SELECT COUNT(1) FROM attendance_records WHERE month = m.label) AS records
		FROM months m
		ORDER BY m.seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query month stats failed: %w", err)
	}
	defer rows.Close()

	var out []MonthStat
	for rows.Next() {
		var it MonthStat
		if err := rows.Scan(&it.Month, &it.Employees, &it.Records); err != nil {
			return nil, fmt.Errorf("scan month stats failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate month stats failed: %w", err)
	}
	return out, nil
}
