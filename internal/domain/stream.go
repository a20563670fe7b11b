package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamLocationLoaded = "stream:location:loaded"
	StreamImportDone     = "stream:location:import:done"
)

// LocationLoadedEvent - публикуется для каждой записи после коммита
type LocationLoadedEvent struct {
	ImportID   uuid.UUID `json:"import_id"`
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// ImportCompletedEvent - итог одного прогона загрузки
type ImportCompletedEvent struct {
	ImportID   uuid.UUID `json:"import_id"`
	Source     string    `json:"source"`
	Total      int       `json:"total"`
	Inserted   int       `json:"inserted"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	Committed  bool      `json:"committed"`
	FinishedAt time.Time `json:"finished_at"`
}
