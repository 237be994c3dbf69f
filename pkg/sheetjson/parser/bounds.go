package parser

// findDataBounds locates the header row and the table width.
// headerRow is the index of the first row holding any non-empty cell, or -1
// when the sheet is blank. width is one past the right-most non-empty column.
func findDataBounds(rows [][]string) (headerRow, width int) {
	headerRow = -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if headerRow < 0 {
				headerRow = rowIdx
			}
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}

	return
}

// isBlankRow reports whether every cell in row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
