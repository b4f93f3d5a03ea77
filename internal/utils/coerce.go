package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsJSONNull reports whether raw is absent or the JSON literal null
func IsJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// FloatFromJSON converts a JSON number, or a JSON string holding a number,
// into a finite float64. Browser forms post numeric inputs as strings.
func FloatFromJSON(raw json.RawMessage) (float64, error) {
	text, err := numericText(raw)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to a number", truncateString(text, 32))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s is not a finite number", truncateString(text, 32))
	}
	return value, nil
}

// IntFromJSON converts a JSON number or numeric string into an int.
// Fractional JSON numbers are truncated toward zero; fractional strings are rejected.
func IntFromJSON(raw json.RawMessage) (int, error) {
	quoted := isJSONString(raw)
	text, err := numericText(raw)
	if err != nil {
		return 0, err
	}

	if !quoted && strings.ContainsAny(text, ".eE") {
		value, err := FloatFromJSON(raw)
		if err != nil {
			return 0, err
		}
		value = math.Trunc(value)
		if value < math.MinInt64 || value >= math.MaxInt64 {
			return 0, fmt.Errorf("%s is out of integer range", truncateString(text, 32))
		}
		return int(value), nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to an integer", truncateString(text, 32))
	}
	return value, nil
}

// StringFromJSON decodes a JSON string value
func StringFromJSON(raw json.RawMessage) (string, error) {
	if !isJSONString(raw) {
		return "", fmt.Errorf("expected a string, got %s", jsonKind(raw))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("invalid string: %w", err)
	}
	return s, nil
}

// numericText returns the textual number carried by raw, unquoting strings
func numericText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if isJSONString(trimmed) {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("invalid string: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("cannot convert an empty string to a number")
		}
		return s, nil
	}
	if jsonKind(trimmed) != "number" {
		return "", fmt.Errorf("expected a number, got %s", jsonKind(trimmed))
	}
	return string(trimmed), nil
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) >= 2 && trimmed[0] == '"'
}

// jsonKind names the JSON type of raw for error messages
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch c := trimmed[0]; {
	case c == '"':
		return "string"
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
