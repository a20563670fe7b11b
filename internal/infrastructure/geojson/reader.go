// Package geojson loads a GeoJSON document from a file, stdin or an http(s) URL.
package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/location-loader/internal/domain"
)

// Stdin is the source name that reads the document from standard input.
const Stdin = "-"

// maxErrorBody limits how much of a failed response ends up in the error.
const maxErrorBody = 512

type Reader struct {
	httpClient *http.Client
	stdin      io.Reader
	logger     *zap.Logger
}

// NewReader создает читателя GeoJSON; timeout ограничивает загрузку по URL
func NewReader(timeout time.Duration, logger *zap.Logger) *Reader {
	return &Reader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		stdin:  os.Stdin,
		logger: logger,
	}
}

// WithStdin подменяет стандартный ввод
func (r *Reader) WithStdin(in io.Reader) *Reader {
	r.stdin = in
	return r
}

// Read открывает source и разбирает документ
func (r *Reader) Read(ctx context.Context, source string) (*domain.FeatureCollection, error) {
	switch {
	case source == "":
		return nil, fmt.Errorf("no input source given")
	case source == Stdin:
		r.logger.Debug("Reading GeoJSON from stdin")
		return Decode(r.stdin)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return r.fetch(ctx, source)
	default:
		return r.open(source)
	}
}

func (r *Reader) open(path string) (*domain.FeatureCollection, error) {
	r.logger.Debug("Reading GeoJSON file", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (r *Reader) fetch(ctx context.Context, url string) (*domain.FeatureCollection, error) {
	r.logger.Debug("Fetching GeoJSON", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("Failed to fetch GeoJSON", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		r.logger.Error("GeoJSON source returned error",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("fetch %s: status %d, body: %s", url, resp.StatusCode, string(body))
	}

	return Decode(resp.Body)
}

// Decode разбирает FeatureCollection. Одиночный Feature принимается как
// коллекция из одного объекта, прочие типы верхнего уровня отклоняются.
func Decode(in io.Reader) (*domain.FeatureCollection, error) {
	var doc struct {
		Type string `json:"type"`
		domain.FeatureCollection
		Properties map[string]any   `json:"properties"`
		Geometry   *domain.Geometry `json:"geometry"`
	}
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	switch doc.Type {
	case domain.TypeFeatureCollection:
		fc := doc.FeatureCollection
		fc.Type = doc.Type
		if fc.Features == nil {
			fc.Features = []domain.Feature{}
		}
		return &fc, nil
	case domain.TypeFeature:
		return &domain.FeatureCollection{
			Type: domain.TypeFeatureCollection,
			Features: []domain.Feature{{
				Type:       doc.Type,
				Properties: doc.Properties,
				Geometry:   doc.Geometry,
			}},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported GeoJSON type %q", doc.Type)
	}
}
