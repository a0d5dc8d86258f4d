package entity

// DiffRegion представляет связную область отличий между эталоном и текущим изображением
type DiffRegion struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина рамки в пикселях
	Height int // высота рамки в пикселях
	Area   int // площадь области в пикселях (число пикселей, не площадь рамки)
}

// Center возвращает координаты середины ограничивающей рамки
func (r DiffRegion) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
