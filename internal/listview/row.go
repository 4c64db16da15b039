package listview

import (
	"fmt"
	"strconv"
)

// Row is a single record in a list view. Values are plain scalars: string,
// a Go numeric type, bool, or nil for null. The engine treats rows as
// opaque data and tolerates missing keys.
type Row map[string]any

// cellString renders a scalar cell for filtering and string comparison.
// Floats drop trailing zeros so 42.0 reads as "42".
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// numericValue extracts a float64 from a numeric cell value. The second
// return is false for strings, bools, and nulls.
func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	}
	return 0, false
}
