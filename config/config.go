package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"screendiff/internal/domain/entity"
)

// SeverityLevel пара (метка, порог) из файла порогов
type SeverityLevel struct {
	Label  string  `yaml:"label"`
	Cutoff float64 `yaml:"cutoff"`
}

// Thresholds пороги движка сравнения. Отсутствующие в файле значения
// остаются значениями по умолчанию.
type Thresholds struct {
	SimilarityThreshold float64         `yaml:"similarity_threshold"`
	MinRegionArea       int             `yaml:"min_region_area"`
	LayoutShiftArea     int             `yaml:"layout_shift_area"`
	MultipleRegions     int             `yaml:"multiple_regions"`
	EdgeDivergence      float64         `yaml:"edge_divergence_threshold"`
	SeverityLevels      []SeverityLevel `yaml:"severity_levels"`
}

type Config struct {
	ReportsDir     string
	Workers        int
	UseGoCV        bool
	TelegramToken  string
	TelegramChatID int64
	Thresholds     Thresholds
}

// DefaultThresholds возвращает пороги по умолчанию
func DefaultThresholds() Thresholds {
	return Thresholds{
		SimilarityThreshold: 0.95,
		MinRegionArea:       100,
		LayoutShiftArea:     10000,
		MultipleRegions:     5,
		EdgeDivergence:      5.0,
		SeverityLevels: []SeverityLevel{
			{Label: "critical", Cutoff: 0.70},
			{Label: "high", Cutoff: 0.80},
			{Label: "medium", Cutoff: 0.90},
			{Label: "low", Cutoff: 0.95},
		},
	}
}

// Load читает окружение (.env) и, если задан путь, YAML-файл порогов
func Load(thresholdsPath string) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ReportsDir:     getEnv("REPORTS_DIR", "bug_reports"),
		Workers:        getEnvInt("WORKERS", runtime.NumCPU()),
		UseGoCV:        os.Getenv("USE_GOCV") == "1",
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: getEnvInt64("TELEGRAM_CHAT_ID", 0),
		Thresholds:     DefaultThresholds(),
	}

	if thresholdsPath != "" {
		data, err := os.ReadFile(thresholdsPath)
		if err != nil {
			return nil, fmt.Errorf("read thresholds: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg.Thresholds); err != nil {
			return nil, fmt.Errorf("parse thresholds: %w", err)
		}
	}

	return cfg, nil
}

// SeverityTable переводит настройки в доменную таблицу порогов
func (t Thresholds) SeverityTable() entity.SeverityTable {
	table := make(entity.SeverityTable, 0, len(t.SeverityLevels))
	for _, level := range t.SeverityLevels {
		table = append(table, entity.SeverityLevel{
			Label:  entity.Severity(level.Label),
			Cutoff: level.Cutoff,
		})
	}
	return table
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
