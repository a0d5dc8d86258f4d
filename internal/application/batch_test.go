package app

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"screendiff/internal/domain/entity"
	"screendiff/internal/infrastructure/vision"
)

func writeSolidPNG(t *testing.T, dir, name string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestBatchWithRealDiffer(t *testing.T) {
	dir := t.TempDir()
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	ref1 := writeSolidPNG(t, dir, "ref1.png", 400, 300, blue)
	cur1 := writeSolidPNG(t, dir, "cur1.png", 400, 300, blue)
	ref3 := writeSolidPNG(t, dir, "ref3.png", 400, 300, blue)
	cur3 := writeSolidPNG(t, dir, "cur3.png", 400, 300, red)

	svc := NewComparisonService(vision.NewPixelDiffer(100), newTestClassifier(), 2)
	pairs := []ImagePair{
		{Reference: ref1, Current: cur1, Name: "identical"},
		{Reference: filepath.Join(dir, "missing.png"), Current: cur1, Name: "missing"},
		{Reference: ref3, Current: cur3, Name: "recolored"},
	}

	results := svc.CompareBatch(context.Background(), pairs)
	require.Len(t, results, 3)

	require.False(t, results[0].Failed())
	require.InDelta(t, 1.0, results[0].Similarity, 1e-12)
	require.Equal(t, entity.SeverityNone, results[0].Severity)
	require.False(t, results[0].BugsFound)

	require.True(t, results[1].Failed())
	require.Contains(t, results[1].Error, "image not found")

	require.False(t, results[2].Failed())
	require.Less(t, results[2].Similarity, 0.70)
	require.Equal(t, entity.SeverityCritical, results[2].Severity)
	require.True(t, results[2].BugsFound)

	types := findingTypes(results[2].Bugs)
	require.Contains(t, types, entity.BugLayoutShift)

	agg := NewAggregator()
	agg.Add(results...)
	s := agg.Summarize()

	require.Equal(t, 3, s.Total)
	require.Equal(t, 1, s.Errors)

	// Среднее только по двум удавшимся сравнениям
	expected := (results[0].Similarity + results[2].Similarity) / 2
	require.InDelta(t, expected, s.MeanSimilarity, 1e-9)
}
