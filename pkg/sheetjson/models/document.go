package models

// Document is the full output: one Record per data row.
// A nil Document still encodes as an empty JSON array.
type Document []Record

// MarshalJSON encodes the document as a JSON array.
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return marshalNoEscape([]Record(d))
}
