package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeatureStatus - исход обработки одного объекта
type FeatureStatus string

const (
	FeatureInserted FeatureStatus = "inserted"
	FeatureBuilt    FeatureStatus = "built" // dry run: запись собрана, но не записана
	FeatureSkipped  FeatureStatus = "skipped"
	FeatureFailed   FeatureStatus = "failed"
)

// FeatureResult - строка отчёта по одному объекту
type FeatureResult struct {
	Index      int           `json:"index"`
	Name       string        `json:"name,omitempty"`
	Status     FeatureStatus `json:"status"`
	LocationID *uuid.UUID    `json:"location_id,omitempty"`
	Latitude   *float64      `json:"latitude,omitempty"`
	Longitude  *float64      `json:"longitude,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// ImportReport - итог одного прогона загрузки
type ImportReport struct {
	ID         uuid.UUID       `json:"id"`
	Source     string          `json:"source"`
	DryRun     bool            `json:"dry_run"`
	Committed  bool            `json:"committed"`
	Total      int             `json:"total"`
	Inserted   int             `json:"inserted"`
	Built      int             `json:"built,omitempty"`
	Skipped    int             `json:"skipped"`
	Failed     int             `json:"failed"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Results    []FeatureResult `json:"results"`
}
