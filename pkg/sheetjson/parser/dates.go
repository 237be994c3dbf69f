package parser

import (
	"regexp"
	"strings"
)

// builtinDateFormats lists the built-in number format IDs that display dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

var (
	// quoted literals, escaped characters, and bracketed sections other than
	// elapsed-time markers such as [h] or [mm]
	formatLiteralRE = regexp.MustCompile(`"[^"]*"|\\.|_.|\*.|\[(?:[^\]hHmMsS][^\]]*|[hHmMsS][^\]]*[^\]hHmMsS][^\]]*)\]`)
	dateTokenRE     = regexp.MustCompile(`[dDmMhHyYsS]`)
)

// isDateFormat reports whether a number format renders its value as a date or time.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return builtinDateFormats[numFmt]
}

// isDateFormatCode inspects a custom format code such as "yyyy-mm-dd" or "#,##0.00".
// Only the first section (before ';') is considered.
func isDateFormatCode(code string) bool {
	if strings.EqualFold(code, "General") {
		return false
	}
	section := code
	if idx := strings.Index(section, ";"); idx >= 0 {
		section = section[:idx]
	}
	section = formatLiteralRE.ReplaceAllString(section, "")
	return dateTokenRE.MatchString(section)
}
