package vision

import "image"

// Константы стабилизации SSIM для 8-битных изображений (Wang et al., 2004).
const (
	ssimC1 = (0.01 * 255) * (0.01 * 255)
	ssimC2 = (0.03 * 255) * (0.03 * 255)

	ssimWindow = 7 // сторона скользящего окна
)

// SSIM считает структурную схожесть двух одноканальных изображений
// одинакового размера: по каждому положению скользящего окна комбинируются
// яркость, контраст и структура, итог — среднее по всем окнам.
// Идентичные изображения дают ровно 1.0; на патологических входах значение
// может уйти чуть ниже нуля, вызывающий ограничивает его только для показа.
func SSIM(a, b *image.Gray) float64 {
	w := a.Bounds().Dx()
	h := a.Bounds().Dy()
	win := ssimWindow
	if w < win || h < win {
		// для крошечных картинок берём одно окно на всё изображение
		win = minInt(w, h)
	}
	if win < 1 {
		return 0
	}

	var sum float64
	var count int
	for y := 0; y+win <= h; y++ {
		for x := 0; x+win <= w; x++ {
			sum += ssimWindowScore(a, b, x, y, win)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ssimWindowScore считает SSIM одного окна win x win с углом в (x0, y0)
func ssimWindowScore(a, b *image.Gray, x0, y0, win int) float64 {
	n := float64(win * win)

	var sumA, sumB float64
	for y := y0; y < y0+win; y++ {
		for x := x0; x < x0+win; x++ {
			sumA += float64(a.GrayAt(x, y).Y)
			sumB += float64(b.GrayAt(x, y).Y)
		}
	}
	muA := sumA / n
	muB := sumB / n

	var varA, varB, cov float64
	for y := y0; y < y0+win; y++ {
		for x := x0; x < x0+win; x++ {
			da := float64(a.GrayAt(x, y).Y) - muA
			db := float64(b.GrayAt(x, y).Y) - muB
			varA += da * da
			varB += db * db
			cov += da * db
		}
	}
	varA /= n
	varB /= n
	cov /= n

	num := (2*muA*muB + ssimC1) * (2*cov + ssimC2)
	den := (muA*muA + muB*muB + ssimC1) * (varA + varB + ssimC2)
	return num / den
}

// DiffPercent возвращает долю пикселей с ненулевой разницей яркости
// в процентах от всех пикселей. Метрика заведомо чувствительнее SSIM
// и сообщается рядом с ней, а не вместо неё.
func DiffPercent(a, b *image.Gray) float64 {
	w := a.Bounds().Dx()
	h := a.Bounds().Dy()
	total := w * h
	if total == 0 {
		return 0
	}

	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.GrayAt(x, y).Y != b.GrayAt(x, y).Y {
				changed++
			}
		}
	}
	return float64(changed) / float64(total) * 100
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
