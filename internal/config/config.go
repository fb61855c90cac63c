package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Import ImportConfig `toml:"import"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 설정
type DataConfig struct {
	DataDir  string `toml:"data_dir"`
	DBFile   string `toml:"db_file"`
	AutoLoad bool   `toml:"auto_load"` // 시작 시 저장된 세대 복원
}

// ImportConfig 가져오기 설정
type ImportConfig struct {
	MaxUploadMB int  `toml:"max_upload_mb"`
	Persist     bool `toml:"persist"` // 가져오기 완료 후 자동 저장
}

// LoadConfigInfo 설정 로드 메타 정보
type LoadConfigInfo struct {
	PortSpecified bool
	Path          string
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:  "data",
			DBFile:   "attendash.db",
			AutoLoad: true,
		},
		Import: ImportConfig{
			MaxUploadMB: 32,
			Persist:     true,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverMap, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// ConfigPath 실행 파일 옆 config.toml 경로
func ConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 실행 파일 옆 config.toml 로드
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadConfigFrom(ConfigPath())
}

// LoadConfigFrom 지정 경로에서 설정 로드 (파일이 없으면 기본값)
func LoadConfigFrom(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, info, err
	}
	if err == nil {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	// 환경 변수 우선
	if v := os.Getenv("ATTENDASH_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("ATTENDASH_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			config.Server.Port = p
			info.PortSpecified = true
		}
	}

	return config, info, nil
}

// LoadConfig 설정 로드
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig config.toml 저장
func SaveConfig(config *AppConfig) error {
	return SaveConfigTo(ConfigPath(), config)
}

// SaveConfigTo 지정 경로에 저장
func SaveConfigTo(path string, config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveDataDir 데이터 디렉터리 절대 경로 (상대 경로는 실행 파일 기준)
func ResolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// EnsureDataDir 데이터 디렉터리와 하위 디렉터리 생성
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := ResolveDataDir(config)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports", "backups"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// BackupDir JSON 백업 디렉터리
func BackupDir(config *AppConfig) string {
	return filepath.Join(ResolveDataDir(config), "backups")
}

// DBPath SQLite 파일 경로
func DBPath(config *AppConfig) string {
	return filepath.Join(ResolveDataDir(config), config.Data.DBFile)
}
