package utils

import (
	"fmt"
	"strconv"
)

// FormatNumber renders a dimension value without trailing zeros, so "12"
// stays "12" and "11.2" stays "11.2". Catalog files and diagnostic traces
// both rely on this rendering.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ToString converts common scalar types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return FormatNumber(v)
	case float32:
		// Format at 32-bit precision so float32 values keep their short form.
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
