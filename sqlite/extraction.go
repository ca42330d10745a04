package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/itinerary"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ itinerary.ExtractionService = (*ExtractionService)(nil)

const extractionColumns = "id, url, page_type, content_hash, day_count, result, extracted_at"

// ExtractionService implements itinerary.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// CreateExtraction saves a new extraction. The result is stored as JSON and
// its hash recorded so repeated extractions of an unchanged page can be spotted.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *itinerary.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(e.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	e.ID = uuid.New().String()
	e.ContentHash = hashContent(data)
	e.DayCount = len(e.Result.Itinerary)
	e.ExtractedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.URL, string(e.PageType), e.ContentHash, e.DayCount, string(data), formatTime(e.ExtractedAt))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*itinerary.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+extractionColumns+` FROM extractions WHERE id = ?`, id)

	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, itinerary.Errorf(itinerary.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter itinerary.ExtractionFilter) ([]*itinerary.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + extractionColumns + ` FROM extractions WHERE 1=1`)

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.PageType != nil {
		query.WriteString(" AND page_type = ?")
		args = append(args, string(*filter.PageType))
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extractions := []*itinerary.Extraction{}
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return itinerary.Errorf(itinerary.ENOTFOUND, "extraction not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*itinerary.Extraction, error) {
	var e itinerary.Extraction
	var pageType, data, extractedAt string

	if err := row.Scan(&e.ID, &e.URL, &pageType, &e.ContentHash, &e.DayCount, &data, &extractedAt); err != nil {
		return nil, err
	}

	e.PageType = itinerary.PageType(pageType)

	e.Result = &itinerary.Result{}
	if err := json.Unmarshal([]byte(data), e.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	var err error
	if e.ExtractedAt, err = parseTime(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}

	return &e, nil
}
