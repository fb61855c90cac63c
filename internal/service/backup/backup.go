package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"attendash/internal/model"
)

// LatestFile 최근 백업 파일 이름
const LatestFile = "latest.json"

// Path 백업 디렉터리 내 최근 백업 경로
func Path(dir string) string {
	return filepath.Join(dir, LatestFile)
}

// Write 저장 문서를 JSON 으로 원자적 기록 (임시 파일 후 rename)
func Write(path string, snap model.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read 백업 읽기 (버전/분류 검증 포함)
func Read(path string) (model.Snapshot, error) {
	var snap model.Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode backup %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return snap, fmt.Errorf("backup %s: %w", path, err)
	}
	return snap, nil
}

// Remove 백업 삭제 (없으면 무시)
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists 파일 존재 여부
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
