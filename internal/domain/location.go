package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReducedLocation - представительная точка объекта
type ReducedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationRecord - строка таблицы locations
type LocationRecord struct {
	LocationID    uuid.UUID  `json:"location_id" db:"location_id" validate:"required"`
	Name          string     `json:"name" db:"name" validate:"required"`
	Description   string     `json:"description" db:"description"`
	Latitude      float64    `json:"latitude" db:"latitude"`
	Longitude     float64    `json:"longitude" db:"longitude"`
	LocationType  string     `json:"location_type" db:"location_type"`
	Status        string     `json:"status" db:"status" validate:"required"`
	ContributedBy uuid.UUID  `json:"contributed_by" db:"contributed_by"`
	AverageRating float64    `json:"average_rating" db:"average_rating"`
	ReviewCount   int        `json:"review_count" db:"review_count" validate:"gte=0"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// RecordDefaults - постоянные значения полей, которых нет во входных данных
type RecordDefaults struct {
	Description   string
	LocationType  string
	Status        string
	ContributorID uuid.UUID
	AverageRating float64
	ReviewCount   int
}
