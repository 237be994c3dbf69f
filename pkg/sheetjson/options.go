// Package sheetjson converts the first sheet of a spreadsheet into a JSON array of records.
package sheetjson

import "github.com/ukaji3/sheetjson/pkg/sheetjson/parser"

// DateFormat selects how date cells are written to JSON.
type DateFormat string

const (
	// DateEpoch writes dates as milliseconds since the Unix epoch.
	DateEpoch DateFormat = "epoch"
	// DateISO writes dates as "2006-01-02T15:04:05.000" strings.
	DateISO DateFormat = "iso"
)

// Options configures conversion behavior.
type Options struct {
	// DateFormat specifies the date policy (epoch, iso).
	DateFormat DateFormat
	// NAValues lists cell texts written as null.
	// If nil, parser.DefaultNAValues is used. A non-nil empty slice disables NA detection.
	NAValues []string
	// Indent is the per-level indentation of the output JSON.
	// If empty, two spaces are used.
	Indent string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		DateFormat: DateEpoch,
		Indent:     "  ",
	}
}

// TableParams returns the parser parameters for these options.
func (o Options) TableParams() parser.TableParams {
	params := parser.DefaultTableParams()
	if o.NAValues != nil {
		params.NAValues = o.NAValues
	}
	return params
}

// IndentOrDefault returns the indentation unit to use.
func (o Options) IndentOrDefault() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}
