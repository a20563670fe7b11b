package dto

import "github.com/location-loader/internal/domain"

// ImportRequest - запрос на загрузку коллекции объектов
type ImportRequest struct {
	// Source - откуда пришли данные (путь, URL, "http"); попадает в отчёт
	Source     string                    `json:"source"`
	DryRun     bool                      `json:"dry_run"`
	Collection *domain.FeatureCollection `json:"collection" validate:"required"`
}
