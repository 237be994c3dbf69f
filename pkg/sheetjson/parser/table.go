// Package parser reads spreadsheet sheets into tables.
package parser

import (
	"github.com/ukaji3/sheetjson/pkg/sheetjson/models"
	"github.com/xuri/excelize/v2"
)

// TableParams holds parameters for reading a sheet into a Table.
type TableParams struct {
	// NAValues lists cell texts read as missing values.
	NAValues []string
}

// DefaultTableParams returns default table reading parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		NAValues: DefaultNAValues,
	}
}

// ReadTable reads a sheet into a Table.
// The first non-blank row supplies the column names and every later
// non-blank row becomes one table row, in sheet order.
func ReadTable(f *excelize.File, sheetName string, params TableParams) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	table := &models.Table{}

	headerRow, width := findDataBounds(rows)
	if headerRow < 0 {
		return table, nil
	}

	cells, err := newCellReader(f, sheetName, params.NAValues)
	if err != nil {
		return nil, err
	}

	// Column names
	names := make([]string, width)
	header := rows[headerRow]
	for colIdx := 0; colIdx < width; colIdx++ {
		var v interface{}
		if colIdx < len(header) {
			v, err = cells.coerce(colIdx+1, headerRow+1, header[colIdx])
			if err != nil {
				return nil, err
			}
		}
		names[colIdx] = columnLabel(v, colIdx)
	}
	table.Columns = dedupeColumns(names)

	// Data rows
	for rowIdx := headerRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isBlankRow(row) {
			continue
		}

		values := make([]interface{}, width)
		for colIdx, raw := range row {
			if colIdx >= width {
				break
			}
			values[colIdx], err = cells.Value(colIdx+1, rowIdx+1, raw)
			if err != nil {
				return nil, err
			}
		}
		table.Rows = append(table.Rows, values)
	}

	return table, nil
}
