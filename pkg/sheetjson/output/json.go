// Package output serializes converted sheets.
package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ukaji3/sheetjson/pkg/sheetjson/models"
)

// ToJSON encodes doc as a JSON array indented by indent per level.
// HTML characters are not escaped and no trailing newline is written.
func ToJSON(doc models.Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
