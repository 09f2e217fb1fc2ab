package bridge

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Result is the completion value of one evaluation: a string, number, boolean,
// null, or structured value. Its type is not stable across calls, so callers
// coerce explicitly.
type Result struct {
	value any
}

// NewResult wraps a raw evaluation value
func NewResult(v any) Result {
	return Result{value: v}
}

// Value returns the raw evaluation value
func (r Result) Value() any {
	return r.value
}

// IsNull reports whether the script evaluated to null or undefined
func (r Result) IsNull() bool {
	return r.value == nil
}

// String formats the value as text; null renders as the empty string
func (r Result) String() string {
	switch v := r.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Int coerces the value to an integer, e.g. a post ID
func (r Result) Int() (int, error) {
	switch v := r.value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, fmt.Errorf("result %v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("result %q is not an integer: %w", v, err)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("result %q is not an integer: %w", v, err)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("result is null")
	default:
		return 0, fmt.Errorf("result of type %T is not an integer", v)
	}
}

// Bool coerces the value to a boolean using JavaScript truthiness for scalars
func (r Result) Bool() bool {
	switch v := r.value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}
