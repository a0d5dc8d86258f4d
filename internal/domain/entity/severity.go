package entity

// Severity уровень серьёзности визуальной проблемы
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityLevel пара (метка, порог схожести)
type SeverityLevel struct {
	Label  Severity
	Cutoff float64
}

// SeverityTable упорядоченная таблица порогов. Уровни идут от самого
// серьёзного к самому лёгкому, побеждает первый порог, строго ниже
// которого оказалась схожесть.
type SeverityTable []SeverityLevel

// DefaultSeverityTable возвращает таблицу порогов по умолчанию
func DefaultSeverityTable() SeverityTable {
	return SeverityTable{
		{Label: SeverityCritical, Cutoff: 0.70},
		{Label: SeverityHigh, Cutoff: 0.80},
		{Label: SeverityMedium, Cutoff: 0.90},
		{Label: SeverityLow, Cutoff: 0.95},
	}
}

// Grade возвращает уровень серьёзности для значения схожести
func (t SeverityTable) Grade(similarity float64) Severity {
	for _, level := range t {
		if similarity < level.Cutoff {
			return level.Label
		}
	}
	return SeverityNone
}
