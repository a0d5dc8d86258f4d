package vision

import (
	"image"

	"github.com/fogleman/gg"

	"screendiff/internal/domain/entity"
)

// Highlight рисует красные рамки вокруг областей отличий поверх эталона.
// Исходное изображение не меняется.
func Highlight(ref image.Image, regions []entity.DiffRegion) image.Image {
	dc := gg.NewContextForImage(ref)
	dc.SetRGB255(255, 0, 0)
	dc.SetLineWidth(2)
	for _, r := range regions {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
		dc.Stroke()
	}
	return dc.Image()
}
