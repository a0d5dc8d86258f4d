package vision

import (
	"context"
	"fmt"
	"image"

	"screendiff/internal/domain/entity"
	"screendiff/internal/domain/port"
)

// PixelDiffer сравнивает изображения на чистом Go, без OpenCV
type PixelDiffer struct {
	MinRegionArea int
}

// NewPixelDiffer создаёт движок сравнения с минимальной площадью области
func NewPixelDiffer(minRegionArea int) *PixelDiffer {
	return &PixelDiffer{MinRegionArea: minRegionArea}
}

// Diff загружает пару изображений и считает метрики их отличий.
// Эталон никогда не масштабируется: при несовпадении размеров текущее
// изображение приводится к размеру эталона, исходные размеры обоих
// сохраняются в метриках.
func (d *PixelDiffer) Diff(ctx context.Context, referencePath, currentPath string) (*entity.DiffMetrics, error) {
	_ = ctx

	refImg, err := loadImage(referencePath)
	if err != nil {
		return nil, err
	}
	curImg, err := loadImage(currentPath)
	if err != nil {
		return nil, err
	}

	refDims := dimensionsOf(refImg)
	curDims := dimensionsOf(curImg)
	if refDims.Width <= 0 || refDims.Height <= 0 || curDims.Width <= 0 || curDims.Height <= 0 {
		return nil, fmt.Errorf("%w: degenerate image size %dx%d / %dx%d",
			entity.ErrComparison, refDims.Width, refDims.Height, curDims.Width, curDims.Height)
	}
	if curDims != refDims {
		curImg = resizeTo(curImg, refDims.Width, refDims.Height)
	}

	refGray := toGray(refImg)
	curGray := toGray(curImg)

	regions, total := ExtractRegions(refGray, curGray, d.MinRegionArea)

	var visual image.Image
	if len(regions) > 0 {
		visual = Highlight(refImg, regions)
	}

	return &entity.DiffMetrics{
		Similarity:     SSIM(refGray, curGray),
		DiffPercent:    DiffPercent(refGray, curGray),
		EdgeDivergence: EdgeDivergence(refGray, curGray),
		Regions:        regions,
		TotalRegions:   total,
		Reference:      refDims,
		Current:        curDims,
		Visualization:  visual,
	}, nil
}

var _ port.ImageDiffer = (*PixelDiffer)(nil)
