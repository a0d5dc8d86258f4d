package app

import (
	"fmt"

	"screendiff/internal/domain/entity"
)

// Classifier превращает метрики сравнения в список найденных проблем.
// Чистая функция своих входов: никакого скрытого состояния, одинаковые
// метрики всегда дают одинаковые находки.
type Classifier struct {
	SimilarityThreshold float64 // порог "стоит ли вообще сообщать"
	LayoutShiftArea     int     // минимальная площадь крупнейшей области для layout_shift
	MultipleRegions     int     // число областей, после которого фиксируется multiple_differences
	ColorSimilarity     float64 // нижняя граница схожести для color_contrast_issue
	ColorMaxRegions     int     // верхняя граница числа областей для color_contrast_issue
	EdgeThreshold       float64 // порог расхождения карт границ в процентах

	Severity entity.SeverityTable
}

// NewClassifier создаёт классификатор с порогами по умолчанию
func NewClassifier(table entity.SeverityTable) *Classifier {
	return &Classifier{
		SimilarityThreshold: 0.95,
		LayoutShiftArea:     10000,
		MultipleRegions:     5,
		ColorSimilarity:     0.80,
		ColorMaxRegions:     3,
		EdgeThreshold:       5.0,
		Severity:            table,
	}
}

// Classify применяет правила классификации к метрикам сравнения.
// Правила независимы: одно сравнение может дать несколько находок или
// ни одной. При схожести не ниже общего порога находок нет независимо
// от содержимого областей.
func (c *Classifier) Classify(m *entity.DiffMetrics) []entity.BugFinding {
	if m.Similarity >= c.SimilarityThreshold {
		return nil
	}

	var bugs []entity.BugFinding

	if len(m.Regions) > 0 && m.Regions[0].Area > c.LayoutShiftArea {
		largest := m.Regions[0]
		cx, cy := largest.Center()
		bugs = append(bugs, entity.BugFinding{
			Type:        entity.BugLayoutShift,
			Severity:    c.Severity.Grade(m.Similarity),
			Description: fmt.Sprintf("Major layout shift detected. Largest difference area: %d pixels", largest.Area),
			Area:        largest.Area,
			LocationX:   cx,
			LocationY:   cy,
		})
	}

	if len(m.Regions) > c.MultipleRegions {
		bugs = append(bugs, entity.BugFinding{
			Type:        entity.BugMultipleDifferences,
			Severity:    c.Severity.Grade(m.Similarity),
			Description: fmt.Sprintf("Multiple visual differences detected (%d regions)", len(m.Regions)),
			RegionCount: len(m.Regions),
		})
	}

	// Правило срабатывает только при высокой схожести, поэтому уровень
	// фиксированный и может расходиться с общим уровнем результата
	if m.Similarity > c.ColorSimilarity && len(m.Regions) < c.ColorMaxRegions {
		bugs = append(bugs, entity.BugFinding{
			Type:        entity.BugColorContrast,
			Severity:    entity.SeverityLow,
			Description: "Minor color or contrast differences detected",
			Similarity:  m.Similarity,
		})
	}

	if m.EdgeDivergence > c.EdgeThreshold {
		bugs = append(bugs, entity.BugFinding{
			Type:        entity.BugTextRendering,
			Severity:    entity.SeverityMedium,
			Description: "Text rendering differences detected",
		})
	}

	return bugs
}
