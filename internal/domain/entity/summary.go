package entity

// Summary сводная статистика пакета сравнений. Все значения производные:
// пересчитываются из накопленных результатов, нигде не хранятся отдельно.
// Ошибочные сравнения входят в Total, но исключаются из средних и гистограмм.
type Summary struct {
	Total           int              `json:"total"`
	Passed          int              `json:"passed"` // сравнения без найденных багов
	Failed          int              `json:"failed"` // сравнения с найденными багами
	Errors          int              `json:"errors"` // сравнения, завершившиеся ошибкой
	MeanSimilarity  float64          `json:"mean_similarity"`
	MeanDiffPercent float64          `json:"mean_difference_percentage"`
	BySeverity      map[Severity]int `json:"by_severity"`
	ByBugType       map[BugType]int  `json:"by_bug_type"`
}
