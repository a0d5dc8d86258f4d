package container

import (
	"screendiff/config"
	app "screendiff/internal/application"
	"screendiff/internal/domain/port"
)

type Container struct {
	ComparisonService *app.ComparisonService
	Aggregator        *app.Aggregator
}

func New(differ port.ImageDiffer, cfg *config.Config) *Container {
	t := cfg.Thresholds

	classifier := app.NewClassifier(t.SeverityTable())
	classifier.SimilarityThreshold = t.SimilarityThreshold
	classifier.LayoutShiftArea = t.LayoutShiftArea
	classifier.MultipleRegions = t.MultipleRegions
	classifier.EdgeThreshold = t.EdgeDivergence

	comparisonService := app.NewComparisonService(differ, classifier, cfg.Workers)

	return &Container{
		ComparisonService: comparisonService,
		Aggregator:        app.NewAggregator(),
	}
}
