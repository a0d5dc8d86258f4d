package entity

import "errors"

// Ошибки сравнения. Инфраструктура оборачивает их через %w, чтобы
// оркестратор и тесты могли различать тип сбоя через errors.Is.
var (
	ErrNotFound   = errors.New("image not found")
	ErrDecode     = errors.New("image decode failed")
	ErrComparison = errors.New("comparison failed")
)
