package models

// Table is the in-memory form of the first sheet.
type Table struct {
	// Columns holds the column names derived from the header row.
	Columns []string
	// Rows holds one value per column for each data row, top to bottom.
	Rows [][]interface{}
}

// Records pairs every row with the column names.
// Rows shorter than Columns are padded with nil.
func (t *Table) Records() []Record {
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(Record, len(t.Columns))
		for i, name := range t.Columns {
			rec[i].Name = name
			if i < len(row) {
				rec[i].Value = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}
