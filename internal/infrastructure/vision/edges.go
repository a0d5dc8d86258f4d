package vision

import (
	"image"
	"math"
)

// edgeThreshold порог величины градиента, после которого пиксель
// считается границей
const edgeThreshold = 100.0

// EdgeDivergence строит карты границ обоих изображений и возвращает долю
// несовпадающих пикселей в процентах. Ловит отличия отрисовки шрифтов и
// сглаживания, которые не видны областному детектору: общая схожесть почти
// не падает, а карты границ расходятся.
func EdgeDivergence(a, b *image.Gray) float64 {
	ea := sobelEdges(a)
	eb := sobelEdges(b)

	w := a.Bounds().Dx()
	h := a.Bounds().Dy()
	total := w * h
	if total == 0 {
		return 0
	}

	diverged := 0
	for i := range ea {
		if ea[i] != eb[i] {
			diverged++
		}
	}
	return float64(diverged) / float64(total) * 100
}

// sobelEdges возвращает бинарную карту границ оператором Собеля
func sobelEdges(gray *image.Gray) []bool {
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	edges := make([]bool, w*h)

	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * float64(gx[ky+1][kx+1])
					sumY += pixel * float64(gy[ky+1][kx+1])
				}
			}
			if math.Sqrt(sumX*sumX+sumY*sumY) > edgeThreshold {
				edges[y*w+x] = true
			}
		}
	}
	return edges
}
