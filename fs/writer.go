// Package fs saves extraction results as JSON files.
package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/itinerary"
)

// FileName returns the download name for a result extracted from rawURL:
// {type}_data_{part}.json. The part is the second-to-last "/" segment of the
// URL when non-empty, else its last segment, else the page type itself.
//
//	https://cruises.flightcentre.com.au/cruises/bahamas/ → cruise_data_bahamas.json
//	https://tours.flightcentre.com.au/t/1842             → tour_data_t.json
func FileName(pageType itinerary.PageType, rawURL string) string {
	parts := strings.Split(rawURL, "/")

	var part string
	if len(parts) > 2 && parts[len(parts)-2] != "" {
		part = parts[len(parts)-2]
	} else {
		part = parts[len(parts)-1]
	}
	if part == "" {
		part = pageType.String()
	}

	return fmt.Sprintf("%s_data_%s.json", pageType.String(), part)
}

// Writer writes results as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteResult writes result to the file named by FileName, creating the
// directory if needed, and returns the path written.
// Returns EINVALID if the page type is unknown or the result is nil.
func (w *Writer) WriteResult(pageType itinerary.PageType, rawURL string, result *itinerary.Result) (string, error) {
	if pageType == itinerary.PageTypeUnknown {
		return "", itinerary.Errorf(itinerary.EINVALID, "page type required")
	}
	if result == nil {
		return "", itinerary.Errorf(itinerary.EINVALID, "result required")
	}

	var buf bytes.Buffer
	if err := result.WriteJSON(&buf); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, FileName(pageType, rawURL))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return path, nil
}
