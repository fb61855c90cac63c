package store

import (
	"fmt"

	"attendash/internal/model"
)

// SaveSnapshot 레코드/월 목록을 한 트랜잭션으로 통째로 교체
func (s *Store) SaveSnapshot(snap model.Snapshot, importID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attendance_records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM months`); err != nil {
		return fmt.Errorf("failed to clear months: %w", err)
	}

	monthStmt, err := tx.Prepare(`INSERT OR IGNORE INTO months (seq, label) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare month statement: %w", err)
	}
	defer monthStmt.Close()

	for i, m := range snap.Months {
		if _, err := monthStmt.Exec(i, m); err != nil {
			return fmt.Errorf("failed to insert month %q: %w", m, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO attendance_records (
			seq, month, name, employee_id, date,
			category, sub_type,
			overtime_hours, duration_hours, is_day_off,
			import_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range snap.Records {
		_, err := stmt.Exec(
			i, r.Month, r.Name, r.EmployeeID, r.Date,
			string(r.Category), r.SubType,
			r.OvertimeHours, r.DurationHours, r.IsDayOff,
			importID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadSnapshot 저장된 레코드/월 목록을 저장 순서대로 읽기
func (s *Store) LoadSnapshot() (model.Snapshot, error) {
	snap := model.Snapshot{Version: model.SnapshotVersion}

	monthRows, err := s.db.Query(`SELECT label FROM months ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("query months failed: %w", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var m string
		if err := monthRows.Scan(&m); err != nil {
			return snap, fmt.Errorf("scan month failed: %w", err)
		}
		snap.Months = append(snap.Months, m)
	}
	if err := monthRows.Err(); err != nil {
		return snap, fmt.Errorf("iterate months failed: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT month, name, employee_id, date, category, sub_type,
			overtime_hours, duration_hours, is_day_off
		FROM attendance_records
		ORDER BY seq
	`)
	if err != nil {
		return snap, fmt.Errorf("query records failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r        model.AttendanceRecord
			category string
		)
		if err := rows.Scan(
			&r.Month, &r.Name, &r.EmployeeID, &r.Date, &category, &r.SubType,
			&r.OvertimeHours, &r.DurationHours, &r.IsDayOff,
		); err != nil {
			return snap, fmt.Errorf("scan record failed: %w", err)
		}
		r.Category = model.Category(category)
		snap.Records = append(snap.Records, r)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterate records failed: %w", err)
	}
	return snap, nil
}

// CountRecords 저장된 레코드 수
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM attendance_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records failed: %w", err)
	}
	return n, nil
}

// ClearData 저장된 레코드/월 목록 삭제
func (s *Store) ClearData() error {
	return s.SaveSnapshot(model.Snapshot{}, "")
}
