package vision

import (
	"image"
	"sort"

	"screendiff/internal/domain/entity"
)

// activationThreshold порог бинаризации разницы яркости.
// Это порог активации пикселя, не порог схожести.
const activationThreshold = 30

// ExtractRegions группирует отличающиеся пиксели в связные области.
// Разница яркости бинаризуется порогом активации, затем пиксели
// собираются в максимальные 8-связные компоненты: каждое связное пятно,
// включая вогнутые и с дырами, попадает ровно в одну область.
// Возвращаются области с площадью строго больше minArea по убыванию
// площади (при равенстве — порядок обнаружения) и общее число областей
// до фильтра.
func ExtractRegions(a, b *image.Gray, minArea int) (regions []entity.DiffRegion, total int) {
	w := a.Bounds().Dx()
	h := a.Bounds().Dy()

	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if absDelta(a.GrayAt(x, y).Y, b.GrayAt(x, y).Y) > activationThreshold {
				mask[y*w+x] = true
			}
		}
	}

	visited := make([]bool, w*h)
	var queue []int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := y*w + x
			if !mask[start] || visited[start] {
				continue
			}

			// Обход компоненты в глубину
			visited[start] = true
			queue = append(queue[:0], start)
			area := 0
			minX, minY, maxX, maxY := x, y, x, y

			for len(queue) > 0 {
				idx := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				area++

				px, py := idx%w, idx/w
				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
				if py < minY {
					minY = py
				}
				if py > maxY {
					maxY = py
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := px+dx, py+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						nidx := ny*w + nx
						if mask[nidx] && !visited[nidx] {
							visited[nidx] = true
							queue = append(queue, nidx)
						}
					}
				}
			}

			total++
			if area > minArea {
				regions = append(regions, entity.DiffRegion{
					X:      minX,
					Y:      minY,
					Width:  maxX - minX + 1,
					Height: maxY - minY + 1,
					Area:   area,
				})
			}
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area > regions[j].Area
	})
	return regions, total
}

func absDelta(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
