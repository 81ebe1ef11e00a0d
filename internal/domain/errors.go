package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgMissingFile        = "missing required file"
	ErrMsgMissingColumns     = "missing required columns"
	ErrMsgInvalidFilter      = "invalid filter value"
	ErrMsgEmptyFile          = "csv file has no header row"
	ErrMsgCatalogUnavailable = "loot data is unavailable"
)

// Common domain errors
// Typed errors below unwrap to these sentinels so callers can branch with
// errors.Is without caring about the carried detail.
var (
	ErrMissingFile        = errors.New(ErrMsgMissingFile)
	ErrMissingColumns     = errors.New(ErrMsgMissingColumns)
	ErrInvalidFilter      = errors.New(ErrMsgInvalidFilter)
	ErrEmptyFile          = errors.New(ErrMsgEmptyFile)
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
)

// MissingFileError reports a source file that is absent or unreadable.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgMissingFile, e.Path)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }

// MissingColumnError reports required header columns absent from a source
// file. Columns is sorted so error text is deterministic.
type MissingColumnError struct {
	File    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file %s is %s: %s", e.File, ErrMsgMissingColumns, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumns }

// InvalidFilterError reports a structurally invalid filter input, such as a
// rarity outside the enumerated set. Zero matches is never an error.
type InvalidFilterError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidFilterError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s for %s: %q", ErrMsgInvalidFilter, e.Field, e.Value)
	}
	return fmt.Sprintf("%s for %s: %q (allowed: %s)", ErrMsgInvalidFilter, e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidFilterError) Unwrap() error { return ErrInvalidFilter }
