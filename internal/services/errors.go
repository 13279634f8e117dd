package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy shared by every service. Callers classify failures with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrNotFound means a referenced identifier does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery means an unrecognized filter, sort or catalog value.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrConflict means a state guard was violated, e.g. an unbind against
	// the wrong asset or the losing side of a concurrent bind.
	ErrConflict = errors.New("conflict")
	// ErrStoreFailure wraps an underlying persistence error. Retryable from
	// the caller's point of view, never silently swallowed.
	ErrStoreFailure = errors.New("store failure")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// storeErr classifies a gorm error: record-not-found keeps its NotFound
// meaning, everything else is a store failure.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

// ItemResult is the outcome of one item in a best-effort batch operation.
type ItemResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BatchResult collects per-item outcomes. Batch operations never abort on a
// single item's failure; callers inspect the item list to know what applied.
type BatchResult struct {
	Items []ItemResult `json:"items"`
}

// Succeeded returns the number of successful items.
func (r *BatchResult) Succeeded() int {
	n := 0
	for _, it := range r.Items {
		if it.Success {
			n++
		}
	}
	return n
}

// Failed returns the number of failed items.
func (r *BatchResult) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// PartialFailure reports whether at least one item failed.
func (r *BatchResult) PartialFailure() bool {
	return r.Failed() > 0
}

// RowResult is the outcome of one spreadsheet row during bulk import.
type RowResult struct {
	Sheet   string `json:"sheet"`
	Row     int    `json:"row"` // 1-based row number in the sheet, header excluded
	Key     string `json:"key,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ImportResult summarizes a two-sheet import run.
type ImportResult struct {
	Rows    []RowResult `json:"rows"`
	Created int         `json:"created"`
	Updated int         `json:"updated"`
}

// Failed returns the number of failed rows.
func (r *ImportResult) Failed() int {
	n := 0
	for _, row := range r.Rows {
		if !row.Success {
			n++
		}
	}
	return n
}

// PartialFailure reports whether at least one row failed.
func (r *ImportResult) PartialFailure() bool {
	return r.Failed() > 0
}
