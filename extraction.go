package itinerary

import (
	"context"
	"time"
)

// Extraction is a saved extraction result.
type Extraction struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	PageType    PageType  `json:"pageType"`
	ContentHash string    `json:"contentHash"`
	DayCount    int       `json:"dayCount"`
	Result      *Result   `json:"result"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "extraction URL required")
	}
	if e.PageType != PageTypeCruise && e.PageType != PageTypeTour {
		return Errorf(EINVALID, "extraction page type must be cruise or tour")
	}
	if e.Result == nil {
		return Errorf(EINVALID, "extraction result required")
	}
	return nil
}

// ExtractionService represents a service for managing saved extractions.
type ExtractionService interface {
	// CreateExtraction saves a new extraction.
	// ID, DayCount and ExtractedAt are assigned by the service.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	URL      *string   `json:"url"`
	PageType *PageType `json:"pageType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
