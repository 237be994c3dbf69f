package parser

import (
	"fmt"
	"strconv"
	"time"
)

// columnLabel turns a coerced header cell into a column name.
// Blank header cells are named after their 0-based position.
func columnLabel(v interface{}, colIdx int) string {
	switch x := v.(type) {
	case nil:
		return fmt.Sprintf("Unnamed: %d", colIdx)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}

// dedupeColumns renames repeated column names by appending ".1", ".2", ...
// A suffix already taken by another column is skipped.
func dedupeColumns(names []string) []string {
	counts := make(map[string]int, len(names))
	result := make([]string, len(names))

	for i, name := range names {
		cur := counts[name]
		for cur > 0 {
			counts[name] = cur + 1
			name = fmt.Sprintf("%s.%d", name, cur)
			cur = counts[name]
		}
		result[i] = name
		counts[name] = cur + 1
	}

	return result
}
