package sheetjson

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ukaji3/sheetjson/pkg/sheetjson/models"
	"github.com/ukaji3/sheetjson/pkg/sheetjson/output"
	"github.com/ukaji3/sheetjson/pkg/sheetjson/parser"
	"github.com/xuri/excelize/v2"
)

// isoLayout is the layout used for DateISO.
const isoLayout = "2006-01-02T15:04:05.000"

// Convert reads the first sheet of inputPath and writes its rows to outputPath
// as an indented JSON array. An existing output file is overwritten.
// If inputPath does not exist, ErrFileNotFound is returned and nothing is written.
func Convert(inputPath, outputPath string, opts Options) error {
	// Validate input file exists
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	table, err := ReadFirstSheet(inputPath, opts)
	if err != nil {
		return err
	}

	doc := BuildDocument(table, opts)

	data, err := output.ToJSON(doc, opts.IndentOrDefault())
	if err != nil {
		return NewConvertError(StageEncode, outputPath, err)
	}

	if err := output.WriteFile(outputPath, data); err != nil {
		return NewConvertError(StageWrite, outputPath, err)
	}

	return nil
}

// ReadFirstSheet opens the workbook at path and reads its first sheet into a Table.
func ReadFirstSheet(path string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConvertError(StageOpen, path, err)
	}
	defer f.Close()

	sheetName, err := firstSheet(f.GetSheetList())
	if err != nil {
		return nil, NewConvertError(StageRead, path, err)
	}

	table, err := parser.ReadTable(f, sheetName, opts.TableParams())
	if err != nil {
		return nil, NewConvertError(StageRead, path, err)
	}

	return table, nil
}

// firstSheet picks the first name in workbook order.
func firstSheet(sheetList []string) (string, error) {
	if len(sheetList) == 0 {
		return "", ErrNoSheets
	}
	return sheetList[0], nil
}

// BuildDocument turns a Table into a Document, applying the date policy.
func BuildDocument(table *models.Table, opts Options) models.Document {
	records := table.Records()
	for _, rec := range records {
		for i := range rec {
			if t, ok := rec[i].Value.(time.Time); ok {
				rec[i].Value = formatDate(t, opts.DateFormat)
			}
		}
	}
	return models.Document(records)
}

// formatDate renders t under the given date policy.
func formatDate(t time.Time, format DateFormat) interface{} {
	if format == DateISO {
		return t.Format(isoLayout)
	}
	return t.UnixMilli()
}
