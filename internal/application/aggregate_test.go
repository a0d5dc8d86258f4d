package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"screendiff/internal/domain/entity"
)

func sampleResults() []*entity.ComparisonResult {
	return []*entity.ComparisonResult{
		{
			TestName:   "clean",
			Similarity: 1.0,
			Severity:   entity.SeverityNone,
		},
		{
			TestName:    "shifted",
			Similarity:  0.6,
			DiffPercent: 50,
			Severity:    entity.SeverityCritical,
			BugsFound:   true,
			Bugs: []entity.BugFinding{
				{Type: entity.BugLayoutShift, Severity: entity.SeverityCritical},
				{Type: entity.BugTextRendering, Severity: entity.SeverityMedium},
			},
		},
		{
			TestName: "broken",
			Error:    "image not found: ref.png",
		},
	}
}

func TestAggregator_Summarize(t *testing.T) {
	agg := NewAggregator()
	agg.Add(sampleResults()...)

	s := agg.Summarize()

	require.Equal(t, 3, s.Total)
	require.Equal(t, 1, s.Passed)
	require.Equal(t, 1, s.Failed)
	require.Equal(t, 1, s.Errors)

	// Ошибочное сравнение не участвует в средних
	require.InDelta(t, 0.8, s.MeanSimilarity, 1e-9)
	require.InDelta(t, 25.0, s.MeanDiffPercent, 1e-9)

	require.Equal(t, 1, s.BySeverity[entity.SeverityNone])
	require.Equal(t, 1, s.BySeverity[entity.SeverityCritical])
	require.Equal(t, 0, s.BySeverity[entity.SeverityMedium])

	require.Equal(t, 1, s.ByBugType[entity.BugLayoutShift])
	require.Equal(t, 1, s.ByBugType[entity.BugTextRendering])
}

func TestAggregator_SummarizeEmpty(t *testing.T) {
	s := NewAggregator().Summarize()

	require.Equal(t, 0, s.Total)
	require.Equal(t, 0.0, s.MeanSimilarity)
	require.Empty(t, s.BySeverity)
}

func TestAggregator_ResultsPreserveOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Add(sampleResults()...)

	results := agg.Results()
	require.Len(t, results, 3)
	require.Equal(t, "clean", results[0].TestName)
	require.Equal(t, "shifted", results[1].TestName)
	require.Equal(t, "broken", results[2].TestName)
}

func TestAggregator_InstancesAreIndependent(t *testing.T) {
	first := NewAggregator()
	first.Add(sampleResults()...)

	second := NewAggregator()
	require.Equal(t, 0, second.Summarize().Total)
	require.Equal(t, 3, first.Summarize().Total)
}
