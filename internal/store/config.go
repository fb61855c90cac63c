package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrConfigNotFound 설정 키 없음
var ErrConfigNotFound = errors.New("config key not found")

// GetConfig 설정값 조회
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, key)
		}
		return "", err
	}
	return value, nil
}

// SetConfig 설정값 저장
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

const selectedMonthKey = "selected_month"

// GetSelectedMonth 마지막으로 선택한 월 (없으면 빈 문자열)
func (s *Store) GetSelectedMonth() (string, error) {
	v, err := s.GetConfig(selectedMonthKey)
	if errors.Is(err, ErrConfigNotFound) {
		return "", nil
	}
	return v, err
}

// SetSelectedMonth 선택한 월 저장
func (s *Store) SetSelectedMonth(month string) error {
	return s.SetConfig(selectedMonthKey, month)
}
