package parser

import "testing"

func TestNumberValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"-100", int64(-100)},
		{"123.45", 123.45},
		{"2.0", int64(2)},
		{"1E+3", int64(1000)},
		{"9.9900000000000002", 9.99},
		{"1e300", 1e300},
	}

	for _, tt := range tests {
		f, ok := parseNumber(tt.input)
		if !ok {
			t.Fatalf("parseNumber(%q) failed", tt.input)
		}
		result := numberValue(f, tt.input)
		if result != tt.expected {
			t.Errorf("numberValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, input := range []string{"hello", "", "NaN", "Inf", "-Infinity", "1,000"} {
		if f, ok := parseNumber(input); ok {
			t.Errorf("parseNumber(%q) = %v, expected failure", input, f)
		}
	}
	if _, ok := parseNumber("0"); !ok {
		t.Errorf("parseNumber(%q) failed", "0")
	}
}

func TestDateValueTimeOfDay(t *testing.T) {
	r := &cellReader{}

	tests := []struct {
		serial   float64
		expected string
	}{
		{0, "00:00:00"},
		{0.5, "12:00:00"},
		{0.75, "18:00:00"},
		{0.99999, "23:59:59"},
		{0.9999999, "23:59:59"},
	}

	for _, tt := range tests {
		result, err := r.dateValue(tt.serial)
		if err != nil {
			t.Fatalf("dateValue(%v) failed: %v", tt.serial, err)
		}
		if result != tt.expected {
			t.Errorf("dateValue(%v) = %v, expected %q", tt.serial, result, tt.expected)
		}
	}
}
