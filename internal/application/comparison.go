package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"screendiff/internal/domain/entity"
	"screendiff/internal/domain/port"
)

// ImagePair задаёт одно сравнение в пакете
type ImagePair struct {
	Reference string `yaml:"reference"`
	Current   string `yaml:"current"`
	Name      string `yaml:"name"`
}

// ComparisonService собирает движок сравнения и классификатор в один
// вызов: пара путей на входе, готовый результат на выходе
type ComparisonService struct {
	differ     port.ImageDiffer
	classifier *Classifier
	workers    int
}

// NewComparisonService создаёт оркестратор сравнений.
// workers задаёт число параллельных сравнений в пакете.
func NewComparisonService(differ port.ImageDiffer, classifier *Classifier, workers int) *ComparisonService {
	if workers < 1 {
		workers = 1
	}
	return &ComparisonService{
		differ:     differ,
		classifier: classifier,
		workers:    workers,
	}
}

// Compare сравнивает пару изображений и никогда не роняет пакет:
// любая ошибка загрузки или счёта превращается в результат с заполненным
// полем Error и без метрик.
func (s *ComparisonService) Compare(ctx context.Context, referencePath, currentPath, testName string) *entity.ComparisonResult {
	result := &entity.ComparisonResult{
		TestName:      testName,
		ReferencePath: referencePath,
		CurrentPath:   currentPath,
		Timestamp:     time.Now(),
	}

	metrics, err := s.differ.Diff(ctx, referencePath, currentPath)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	bugs := s.classifier.Classify(metrics)

	result.Similarity = metrics.Similarity
	result.DiffPercent = metrics.DiffPercent
	result.RegionCount = len(metrics.Regions)
	result.TotalRegions = metrics.TotalRegions
	result.Severity = s.classifier.Severity.Grade(metrics.Similarity)
	result.Bugs = bugs
	result.BugsFound = len(bugs) > 0
	result.Reference = metrics.Reference
	result.Current = metrics.Current
	result.Visualization = metrics.Visualization
	return result
}

// CompareBatch прогоняет пары на нескольких воркерах. Каждый воркер
// владеет своими буферами, результаты возвращаются строго в исходном
// порядке, ошибка одной пары не прерывает остальные.
func (s *ComparisonService) CompareBatch(ctx context.Context, pairs []ImagePair) []*entity.ComparisonResult {
	results := make([]*entity.ComparisonResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			results[i] = s.Compare(ctx, pair.Reference, pair.Current, pair.Name)
			return nil
		})
	}
	// Воркеры не возвращают ошибок: сбой пары уже записан в её результат
	_ = g.Wait()

	return results
}
