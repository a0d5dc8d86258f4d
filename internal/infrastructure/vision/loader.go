package vision

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/nfnt/resize"

	"screendiff/internal/domain/entity"
)

// loadImage читает и декодирует изображение с диска
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrNotFound, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrDecode, path, err)
	}
	return img, nil
}

// resizeTo приводит изображение к заданному размеру
func resizeTo(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear)
}

// toGray переводит изображение в одноканальную карту яркости
// с началом координат в нуле
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return gray
}

func dimensionsOf(img image.Image) entity.Dimensions {
	b := img.Bounds()
	return entity.Dimensions{Width: b.Dx(), Height: b.Dy()}
}
