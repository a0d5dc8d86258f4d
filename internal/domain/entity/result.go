package entity

import (
	"image"
	"time"
)

// Dimensions размеры изображения до приведения к эталону
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DiffMetrics сырые метрики сравнения двух изображений
type DiffMetrics struct {
	Similarity     float64      // структурная схожесть, 0..1
	DiffPercent    float64      // доля отличающихся пикселей, 0..100
	EdgeDivergence float64      // расхождение карт границ, 0..100
	Regions        []DiffRegion // значимые области по убыванию площади
	TotalRegions   int          // число областей до фильтра по площади
	Reference      Dimensions   // исходный размер эталона
	Current        Dimensions   // исходный размер текущего изображения
	Visualization  image.Image  // эталон с обведёнными областями, nil если областей нет
}

// ComparisonResult итог одного сравнения. Создаётся один раз и не меняется.
// Если сравнение не удалось, заполнено только поле Error, а метрик нет.
type ComparisonResult struct {
	TestName      string       `json:"test_name"`
	ReferencePath string       `json:"reference_path"`
	CurrentPath   string       `json:"current_path"`
	Timestamp     time.Time    `json:"timestamp"`
	Similarity    float64      `json:"similarity"`
	DiffPercent   float64      `json:"difference_percentage"`
	RegionCount   int          `json:"region_count"`       // значимые области
	TotalRegions  int          `json:"total_region_count"` // все области до фильтра
	Severity      Severity     `json:"severity"`
	BugsFound     bool         `json:"bugs_found"`
	Bugs          []BugFinding `json:"bugs"`
	Reference     Dimensions   `json:"reference_dimensions"`
	Current       Dimensions   `json:"current_dimensions"`
	Error         string       `json:"error,omitempty"`
	Visualization image.Image  `json:"-"`
}

// Failed сообщает, что сравнение завершилось ошибкой
func (r *ComparisonResult) Failed() bool {
	return r.Error != ""
}
