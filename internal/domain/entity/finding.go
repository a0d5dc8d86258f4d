package entity

// BugType тип найденной визуальной проблемы
type BugType string

const (
	BugLayoutShift         BugType = "layout_shift"         // крупный сдвиг вёрстки
	BugMultipleDifferences BugType = "multiple_differences" // много отдельных отличий
	BugColorContrast       BugType = "color_contrast_issue" // отличие цвета или контраста
	BugTextRendering       BugType = "text_rendering_issue" // отличие отрисовки текста
)

// BugFinding описывает одну классифицированную проблему. Числовые поля
// заполняются в зависимости от типа и нужны только для отчёта.
// После создания находка не меняется.
type BugFinding struct {
	Type        BugType  `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Area        int      `json:"area,omitempty"`         // площадь крупнейшей области для layout_shift
	RegionCount int      `json:"region_count,omitempty"` // число областей для multiple_differences
	Similarity  float64  `json:"similarity,omitempty"`   // схожесть для color_contrast_issue
	LocationX   int      `json:"location_x,omitempty"`   // центр области для layout_shift
	LocationY   int      `json:"location_y,omitempty"`
}
