package model

import (
	"errors"
	"fmt"
)

// SnapshotVersion 저장 문서 형식 버전
const SnapshotVersion = 1

// ErrSnapshotVersion 지원하지 않는 저장 문서 버전
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot 저장/복원용 문서 (인덱스는 저장하지 않고 복원 시 재구성)
type Snapshot struct {
	Version int                `json:"version"`
	Months  []string           `json:"months"`
	Records []AttendanceRecord `json:"records"`
}

// Validate 버전 및 레코드 분류 확인
func (s Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	for i, r := range s.Records {
		if r.Name == "" {
			return fmt.Errorf("record %d: missing name", i)
		}
		if !r.Category.Valid() {
			return fmt.Errorf("record %d: unknown category %q", i, r.Category)
		}
	}
	return nil
}
