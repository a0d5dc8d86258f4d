package storage

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"screendiff/internal/domain/entity"
)

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir)
	require.NoError(t, err)

	results := []*entity.ComparisonResult{
		{
			TestName:   "login",
			Timestamp:  time.Now(),
			Similarity: 0.85,
			Severity:   entity.SeverityMedium,
			BugsFound:  true,
			Bugs: []entity.BugFinding{
				{Type: entity.BugLayoutShift, Severity: entity.SeverityCritical, Area: 15000},
			},
		},
		{TestName: "broken", Error: "image not found"},
	}
	summary := &entity.Summary{Total: 2, Failed: 1, Errors: 1}

	path, err := w.WriteJSON(results, summary)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Summary *entity.Summary            `json:"summary"`
		Results []*entity.ComparisonResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Equal(t, 2, decoded.Summary.Total)
	require.Len(t, decoded.Results, 2)
	require.Equal(t, "login", decoded.Results[0].TestName)
	require.Equal(t, entity.BugLayoutShift, decoded.Results[0].Bugs[0].Type)
	require.Equal(t, "image not found", decoded.Results[1].Error)

	// Поле с картинкой не попадает в JSON
	require.NotContains(t, string(data), "Visualization")
}

func TestWriteVisualization(t *testing.T) {
	dir := t.TempDir()
	w, err := NewReportWriter(dir)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	path, err := w.WriteVisualization("checkout", img)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "diff_checkout.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 20, decoded.Bounds().Dx())
	require.Equal(t, 10, decoded.Bounds().Dy())
}

func TestNewReportWriterNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := NewReportWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
