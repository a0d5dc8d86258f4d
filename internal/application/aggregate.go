package app

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"screendiff/internal/domain/entity"
)

// Aggregator накапливает результаты пакета сравнений. Состояние живёт
// только в рамках одного экземпляра: новый пакет — новый агрегатор,
// между запусками ничего не сохраняется.
type Aggregator struct {
	mu      sync.Mutex
	results []*entity.ComparisonResult
}

// NewAggregator создаёт пустой агрегатор
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add добавляет результаты в пакет, сохраняя порядок добавления
func (a *Aggregator) Add(results ...*entity.ComparisonResult) {
	a.mu.Lock()
	a.results = append(a.results, results...)
	a.mu.Unlock()
}

// Results возвращает копию накопленных результатов в порядке добавления
func (a *Aggregator) Results() []*entity.ComparisonResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*entity.ComparisonResult, len(a.results))
	copy(out, a.results)
	return out
}

// Summarize пересчитывает сводку по накопленным результатам. Ошибочные
// сравнения входят в общий счётчик, но исключаются из средних и гистограмм.
func (a *Aggregator) Summarize() *entity.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := &entity.Summary{
		Total:      len(a.results),
		BySeverity: make(map[entity.Severity]int),
		ByBugType:  make(map[entity.BugType]int),
	}

	var sims, diffs []float64
	for _, r := range a.results {
		if r.Failed() {
			s.Errors++
			continue
		}
		if r.BugsFound {
			s.Failed++
		} else {
			s.Passed++
		}
		sims = append(sims, r.Similarity)
		diffs = append(diffs, r.DiffPercent)
		s.BySeverity[r.Severity]++
		for _, bug := range r.Bugs {
			s.ByBugType[bug.Type]++
		}
	}

	if len(sims) > 0 {
		s.MeanSimilarity = stat.Mean(sims, nil)
		s.MeanDiffPercent = stat.Mean(diffs, nil)
	}
	return s
}
