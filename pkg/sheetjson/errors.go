package sheetjson

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// Conversion stages reported by ConvertError.
const (
	StageOpen   = "open"
	StageRead   = "read"
	StageEncode = "encode"
	StageWrite  = "write"
)

// ConvertError represents an error during conversion.
type ConvertError struct {
	Stage string // "open", "read", "encode", "write"
	Path  string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(stage, path string, err error) *ConvertError {
	return &ConvertError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
