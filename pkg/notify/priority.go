package notify

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// ID identifies a single registration. IDs are unique across every Manager
// in the process and are never reused.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// ParsePriority interprets v as a priority. Integer, float and numeric string
// values are accepted; NaN and infinities are rejected.
func ParsePriority(v any) (float64, error) {
	var p float64
	switch n := v.(type) {
	case float64:
		p = n
	case float32:
		p = float64(n)
	case int:
		p = float64(n)
	case int8:
		p = float64(n)
	case int16:
		p = float64(n)
	case int32:
		p = float64(n)
	case int64:
		p = float64(n)
	case uint:
		p = float64(n)
	case uint8:
		p = float64(n)
	case uint16:
		p = float64(n)
	case uint32:
		p = float64(n)
	case uint64:
		p = float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, registrationError("priority must be a number, not %q", n)
		}
		p = f
	default:
		return 0, registrationError("priority must be a number, not %T", v)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, registrationError("priority must be finite, not %v", p)
	}
	return p, nil
}
