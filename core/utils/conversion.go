package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is rendered in place of absent or null values.
const Placeholder = "null"

// ToInt converts various types to int using explicit type switching.
// It handles the numeric types produced by JSON decoders, strings, and byte slices.
// The second return value reports whether the conversion succeeded.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return i, err == nil
	default:
		return 0, false
	}
}

// ToString converts a decoded JSON value to its display form.
// nil becomes Placeholder; integral floats print without an exponent.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return Placeholder
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsBlank reports whether a decoded JSON value is null or an empty string.
func IsBlank(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
