package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"screendiff/internal/domain/entity"
)

// ReportWriter сохраняет результаты пакета на диск. Движок сравнения
// сам ничего не пишет: запись отчёта и картинок — забота вызывающего.
type ReportWriter struct {
	dir string
}

// NewReportWriter создаёт писателя отчётов, при необходимости создавая директорию
func NewReportWriter(dir string) (*ReportWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &ReportWriter{dir: dir}, nil
}

// report схема JSON-отчёта: сводка плюс упорядоченные результаты
type report struct {
	GeneratedAt time.Time                  `json:"generated_at"`
	Summary     *entity.Summary            `json:"summary"`
	Results     []*entity.ComparisonResult `json:"results"`
}

// WriteJSON сохраняет отчёт о пакете и возвращает путь к файлу
func (w *ReportWriter) WriteJSON(results []*entity.ComparisonResult, summary *entity.Summary) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("report_%s.json", time.Now().Format("20060102_150405")))

	data, err := json.MarshalIndent(report{
		GeneratedAt: time.Now(),
		Summary:     summary,
		Results:     results,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteVisualization сохраняет картинку с подсветкой отличий в PNG
// и возвращает путь к файлу
func (w *ReportWriter) WriteVisualization(testName string, img image.Image) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("diff_%s.png", testName))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}
