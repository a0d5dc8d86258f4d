//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"sort"

	"gocv.io/x/gocv"

	"screendiff/internal/domain/entity"
	"screendiff/internal/domain/port"
)

// GoCVDiffer сравнивает изображения через OpenCV. Даёт тот же контракт,
// что и PixelDiffer, но границы ищет детектором Канни.
type GoCVDiffer struct {
	MinRegionArea int
}

// NewGoCVDiffer создаёт движок сравнения на OpenCV
func NewGoCVDiffer(minRegionArea int) *GoCVDiffer {
	return &GoCVDiffer{MinRegionArea: minRegionArea}
}

// Diff загружает пару изображений и считает метрики их отличий
func (d *GoCVDiffer) Diff(ctx context.Context, referencePath, currentPath string) (*entity.DiffMetrics, error) {
	_ = ctx

	refMat, err := readMat(referencePath)
	if err != nil {
		return nil, err
	}
	defer refMat.Close()

	curMat, err := readMat(currentPath)
	if err != nil {
		return nil, err
	}
	defer curMat.Close()

	refDims := entity.Dimensions{Width: refMat.Cols(), Height: refMat.Rows()}
	curDims := entity.Dimensions{Width: curMat.Cols(), Height: curMat.Rows()}
	if refDims.Width <= 0 || refDims.Height <= 0 || curDims.Width <= 0 || curDims.Height <= 0 {
		return nil, fmt.Errorf("%w: degenerate image size %dx%d / %dx%d",
			entity.ErrComparison, refDims.Width, refDims.Height, curDims.Width, curDims.Height)
	}

	// Эталон никогда не масштабируется, текущее приводится к его размеру
	if curDims != refDims {
		resized := gocv.NewMat()
		gocv.Resize(curMat, &resized, image.Pt(refDims.Width, refDims.Height), 0, 0, gocv.InterpolationArea)
		curMat.Close()
		curMat = resized
	}

	refGray := gocv.NewMat()
	defer refGray.Close()
	gocv.CvtColor(refMat, &refGray, gocv.ColorBGRToGray)

	curGray := gocv.NewMat()
	defer curGray.Close()
	gocv.CvtColor(curMat, &curGray, gocv.ColorBGRToGray)

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(refGray, curGray, &diff)

	total := refDims.Width * refDims.Height
	diffPercent := float64(gocv.CountNonZero(diff)) / float64(total) * 100

	// Бинаризуем разницу порогом активации и собираем связные компоненты
	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, activationThreshold, 255, gocv.ThresholdBinary)

	regions, totalRegions := d.connectedRegions(thresh)

	refImg, err := grayFromMat(refGray)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrComparison, err)
	}
	curImg, err := grayFromMat(curGray)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrComparison, err)
	}

	var visual image.Image
	if len(regions) > 0 {
		visual = highlightMat(refMat, regions)
	}

	return &entity.DiffMetrics{
		Similarity:     SSIM(refImg, curImg),
		DiffPercent:    diffPercent,
		EdgeDivergence: cannyDivergence(refGray, curGray),
		Regions:        regions,
		TotalRegions:   totalRegions,
		Reference:      refDims,
		Current:        curDims,
		Visualization:  visual,
	}, nil
}

// connectedRegions собирает 8-связные компоненты бинарной маски:
// площадь — точное число пикселей компоненты, рамка — её границы
func (d *GoCVDiffer) connectedRegions(mask gocv.Mat) (regions []entity.DiffRegion, total int) {
	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	count := gocv.ConnectedComponentsWithStats(mask, &labels, &stats, &centroids)

	// Метка 0 — фон
	for i := 1; i < count; i++ {
		area := int(stats.GetIntAt(i, int(gocv.CCStatArea)))
		total++
		if area <= d.MinRegionArea {
			continue
		}
		regions = append(regions, entity.DiffRegion{
			X:      int(stats.GetIntAt(i, int(gocv.CCStatLeft))),
			Y:      int(stats.GetIntAt(i, int(gocv.CCStatTop))),
			Width:  int(stats.GetIntAt(i, int(gocv.CCStatWidth))),
			Height: int(stats.GetIntAt(i, int(gocv.CCStatHeight))),
			Area:   area,
		})
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area > regions[j].Area
	})
	return regions, total
}

// cannyDivergence сравнивает карты границ Канни и возвращает долю
// несовпадающих пикселей в процентах
func cannyDivergence(refGray, curGray gocv.Mat) float64 {
	refEdges := gocv.NewMat()
	defer refEdges.Close()
	gocv.Canny(refGray, &refEdges, 50, 150)

	curEdges := gocv.NewMat()
	defer curEdges.Close()
	gocv.Canny(curGray, &curEdges, 50, 150)

	edgeDiff := gocv.NewMat()
	defer edgeDiff.Close()
	gocv.AbsDiff(refEdges, curEdges, &edgeDiff)

	total := refGray.Cols() * refGray.Rows()
	if total == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(edgeDiff)) / float64(total) * 100
}

// highlightMat рисует красные рамки областей на копии эталона
func highlightMat(refMat gocv.Mat, regions []entity.DiffRegion) image.Image {
	out := refMat.Clone()
	defer out.Close()

	red := color.RGBA{R: 255, A: 255}
	for _, r := range regions {
		gocv.Rectangle(&out, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height), red, 2)
	}

	img, err := out.ToImage()
	if err != nil {
		return nil
	}
	return img
}

// readMat читает изображение с диска в gocv.Mat
func readMat(path string) (gocv.Mat, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gocv.NewMat(), fmt.Errorf("%w: %s", entity.ErrNotFound, path)
		}
		return gocv.NewMat(), fmt.Errorf("%w: %s: %v", entity.ErrNotFound, path, err)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("%w: %s", entity.ErrDecode, path)
	}
	return mat, nil
}

// grayFromMat превращает одноканальный Mat в image.Gray
func grayFromMat(gray gocv.Mat) (*image.Gray, error) {
	img, err := gray.ToImage()
	if err != nil {
		return nil, err
	}
	if g, ok := img.(*image.Gray); ok {
		return g, nil
	}
	return toGray(img), nil
}

var _ port.ImageDiffer = (*GoCVDiffer)(nil)
