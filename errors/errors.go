// Package errors provides error types and handling for table audit operations.
package errors

import (
	"errors"
	"fmt"
)

// CatalogError indicates that the existence probe for a table failed for a
// reason other than "not found". The table is excluded from analysis; other
// tables are unaffected.
type CatalogError struct {
	// Table is the table whose probe failed.
	Table string

	// Err is the underlying error from the backend.
	Err error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("audit.catalog table %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a CatalogError for the given table.
func NewCatalogError(table string, err error) *CatalogError {
	return &CatalogError{Table: table, Err: err}
}

// ScanError indicates that a page fetch failed mid-scan. The whole scan for
// that table is unusable: records yielded before the failure are discarded
// and no partial report is produced.
type ScanError struct {
	// Table is the table being scanned when the fetch failed.
	Table string

	// Err is the underlying error from the backend.
	Err error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("audit.scan table %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a ScanError for the given table.
func NewScanError(table string, err error) *ScanError {
	return &ScanError{Table: table, Err: err}
}

// AnalysisError wraps any failure that aborted one table's analysis. Failures
// are isolated at the table boundary: one table's AnalysisError never
// prevents other tables from being analyzed.
type AnalysisError struct {
	// Table is the table whose analysis failed.
	Table string

	// Err is the underlying error, typically a ScanError or CatalogError.
	Err error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("audit.analyze table %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates an AnalysisError for the given table.
func NewAnalysisError(table string, err error) *AnalysisError {
	return &AnalysisError{Table: table, Err: err}
}

// Sentinel errors for common audit failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrTableNotFound indicates that the requested table does not exist.
	ErrTableNotFound = errors.New("audit: table not found")

	// ErrInvalidTableName indicates that a table name violates naming rules.
	ErrInvalidTableName = errors.New("audit: invalid table name")

	// ErrInvalidInput indicates that the provided input is invalid.
	ErrInvalidInput = errors.New("audit: invalid input")
)

// IsTableNotFound checks if an error indicates that a table was not found.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsTableNotFound(err error) bool {
	return errors.Is(err, ErrTableNotFound)
}

// IsInvalidTableName checks if an error indicates an invalid table name.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidTableName(err error) bool {
	return errors.Is(err, ErrInvalidTableName)
}
