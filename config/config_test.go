package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"screendiff/internal/domain/entity"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	require.Equal(t, 0.95, th.SimilarityThreshold)
	require.Equal(t, 100, th.MinRegionArea)
	require.Equal(t, 10000, th.LayoutShiftArea)
	require.Equal(t, 5, th.MultipleRegions)
	require.Equal(t, 5.0, th.EdgeDivergence)
	require.Len(t, th.SeverityLevels, 4)
	require.Equal(t, "critical", th.SeverityLevels[0].Label)
	require.Equal(t, 0.70, th.SeverityLevels[0].Cutoff)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REPORTS_DIR", "/tmp/reports")
	t.Setenv("WORKERS", "3")
	t.Setenv("USE_GOCV", "1")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123456")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "/tmp/reports", cfg.ReportsDir)
	require.Equal(t, 3, cfg.Workers)
	require.True(t, cfg.UseGoCV)
	require.Equal(t, int64(-100123456), cfg.TelegramChatID)
	require.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REPORTS_DIR", "")
	t.Setenv("WORKERS", "")
	t.Setenv("USE_GOCV", "")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "bug_reports", cfg.ReportsDir)
	require.Positive(t, cfg.Workers)
	require.False(t, cfg.UseGoCV)
}

func TestLoadThresholdsOverlay(t *testing.T) {
	// Частичный файл: заданные ключи перекрывают умолчания,
	// остальные остаются прежними
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	data := []byte(`similarity_threshold: 0.90
min_region_area: 50
severity_levels:
  - label: critical
    cutoff: 0.60
  - label: low
    cutoff: 0.90
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 0.90, cfg.Thresholds.SimilarityThreshold)
	require.Equal(t, 50, cfg.Thresholds.MinRegionArea)
	require.Equal(t, 10000, cfg.Thresholds.LayoutShiftArea)
	require.Equal(t, 5, cfg.Thresholds.MultipleRegions)
	require.Len(t, cfg.Thresholds.SeverityLevels, 2)
}

func TestLoadThresholdsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSeverityTableConversion(t *testing.T) {
	table := DefaultThresholds().SeverityTable()

	require.Equal(t, entity.DefaultSeverityTable(), table)
	require.Equal(t, entity.SeverityCritical, table.Grade(0.5))
	require.Equal(t, entity.SeverityNone, table.Grade(0.99))
}
