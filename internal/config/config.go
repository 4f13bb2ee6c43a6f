package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig cấu hình ứng dụng, đọc từ config.toml cạnh file thực thi
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig cấu hình server
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig cấu hình thư mục dữ liệu
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig các hằng nghiệp vụ. Hai con số này là quy ước kế
// toán hiện hành, không có tài liệu giải thích gốc, nên để cấu hình
// được thay vì chôn trong code.
type BusinessConfig struct {
	// VATTolerance chênh lệch tiền (đồng) tối đa giữa hai sổ vẫn
	// tính là khớp
	VATTolerance float64 `toml:"vat_tolerance"`
	// PriceCeiling trần đơn giá vé; vượt trần coi là dữ liệu rác
	PriceCeiling float64 `toml:"price_ceiling"`
}

// DefaultConfig cấu hình mặc định
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			VATTolerance: 100,
			PriceCeiling: 150000,
		},
	}
}

// GetExeDir thư mục chứa file thực thi
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig đọc config.toml; file không tồn tại thì dùng mặc định
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// biến môi trường ghi đè (chạy tay / E2E)
	if v := os.Getenv("BAOCAO_DATA_DIR"); v != "" {
		cfg.Data.DataDir = v
	}
	if v := os.Getenv("BAOCAO_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}

	return cfg, nil
}

// SaveConfig ghi cấu hình ra config.toml
func SaveConfig(cfg *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir tạo thư mục dữ liệu (và thư mục con) nếu chưa có
func EnsureDataDir(cfg *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dataDir := filepath.Join(exeDir, cfg.Data.DataDir)
	for _, sub := range []string{"", "uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, sub), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
