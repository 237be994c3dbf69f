package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultNAValues lists cell texts that are read as missing values.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// cellReader coerces raw cell text into typed values for one sheet.
type cellReader struct {
	f         *excelize.File
	sheetName string
	date1904  bool
	naValues  map[string]struct{}
	// dateStyles caches whether a style index uses a date number format.
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File, sheetName string, naValues []string) (*cellReader, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}

	na := make(map[string]struct{}, len(naValues))
	for _, v := range naValues {
		na[v] = struct{}{}
	}

	return &cellReader{
		f:          f,
		sheetName:  sheetName,
		date1904:   props.Date1904 != nil && *props.Date1904,
		naValues:   na,
		dateStyles: make(map[int]bool),
	}, nil
}

// Value returns the typed value of the cell at 1-based (col, row) whose raw
// text is raw. Strings listed as NA values come back as nil.
func (r *cellReader) Value(col, row int, raw string) (interface{}, error) {
	v, err := r.coerce(col, row, raw)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		if _, na := r.naValues[s]; na {
			return nil, nil
		}
	}
	return v, nil
}

// coerce maps a raw cell to string, int64, float64, bool, time.Time or nil.
func (r *cellReader) coerce(col, row int, raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	cellType, err := r.f.GetCellType(r.sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE"), nil
	case excelize.CellTypeError:
		return nil, nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		// t="str" holds a formula's text result.
		return raw, nil
	}

	// Numeric cells carry no type attribute or t="n".
	num, ok := parseNumber(raw)
	if !ok {
		return raw, nil
	}

	isDate, err := r.isDateCell(cellName)
	if err != nil {
		return nil, err
	}
	if isDate {
		return r.dateValue(num)
	}

	return numberValue(num, raw), nil
}

// isDateCell reports whether the cell's style uses a date or time number format.
func (r *cellReader) isDateCell(cellName string) (bool, error) {
	styleIdx, err := r.f.GetCellStyle(r.sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[styleIdx]; ok {
		return isDate, nil
	}

	style, err := r.f.GetStyle(styleIdx)
	if err != nil {
		return false, err
	}
	isDate := isDateFormat(style.NumFmt, style.CustomNumFmt)
	r.dateStyles[styleIdx] = isDate
	return isDate, nil
}

// dateValue converts a serial date. Serials below one day are times of day
// and are returned as "15:04:05" text.
func (r *cellReader) dateValue(serial float64) (interface{}, error) {
	if serial >= 0 && serial < 1 {
		secs := min(int64(math.Round(serial*86400)), 86399)
		return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60), nil
	}

	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return nil, err
	}
	return t.Round(time.Millisecond), nil
}

// parseNumber parses raw as a finite float.
func parseNumber(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numberValue returns int64 for integral values that fit, float64 otherwise.
func numberValue(f float64, raw string) interface{} {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}
