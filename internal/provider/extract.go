package provider

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ExtractValue normalizes a numeric value from the shapes JSON decoding can
// produce: float64, json.Number, integer types, and numeric strings.
//
// Returns ok=false for nil, empty, unparseable, NaN and infinite values.
func ExtractValue(val any) (float64, bool) {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0, false
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOrZero coerces val, mapping anything unusable to 0.
func FloatOrZero(val any) float64 {
	f, _ := ExtractValue(val)
	return f
}

// FloatPtr coerces val, mapping anything unusable to nil.
func FloatPtr(val any) *float64 {
	f, ok := ExtractValue(val)
	if !ok {
		return nil
	}
	return &f
}

// IntPtr coerces val to a whole number; fractional values map to nil.
func IntPtr(val any) *int64 {
	f, ok := ExtractValue(val)
	if !ok || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return nil
	}
	n := int64(f)
	return &n
}

// ID extracts an integer identifier; ok=false when absent or not whole.
func ID(val any) (int64, bool) {
	n := IntPtr(val)
	if n == nil {
		return 0, false
	}
	return *n, true
}

// String renders val as trimmed text. Whole floats print without a decimal
// point so numeric IDs keep their natural form.
func String(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return strings.TrimSpace(s.String())
		}
		return ""
	}
}
