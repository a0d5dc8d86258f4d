package port

import (
	"context"

	"screendiff/internal/domain/entity"
)

// ImageDiffer интерфейс численного движка сравнения изображений
type ImageDiffer interface {
	// Diff загружает пару изображений и возвращает метрики их отличий.
	// Текущее изображение при несовпадении размеров приводится к эталону.
	Diff(ctx context.Context, referencePath, currentPath string) (*entity.DiffMetrics, error)
}
