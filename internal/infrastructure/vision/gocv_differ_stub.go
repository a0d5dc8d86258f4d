//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"screendiff/internal/domain/entity"
	"screendiff/internal/domain/port"
)

// GoCVDiffer заглушка для сборки без OpenCV
type GoCVDiffer struct {
	MinRegionArea int
}

// NewGoCVDiffer создаёт движок-заглушку (без OpenCV)
func NewGoCVDiffer(minRegionArea int) *GoCVDiffer {
	return &GoCVDiffer{MinRegionArea: minRegionArea}
}

// Diff возвращает ошибку, если сборка без тега gocv
func (d *GoCVDiffer) Diff(ctx context.Context, referencePath, currentPath string) (*entity.DiffMetrics, error) {
	_ = ctx
	_ = referencePath
	_ = currentPath
	return nil, errors.New("gocv build tag is not enabled")
}

var _ port.ImageDiffer = (*GoCVDiffer)(nil)
