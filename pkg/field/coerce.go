package field

import (
	"math"
	"strconv"
	"strings"

	"github.com/newtron-network/fgobj/pkg/util"
)

// The As* helpers turn loosely typed input (decoded YAML or JSON) into the
// Go types validators accept. A nil input is "not provided". Input of the
// wrong kind is a TypeMismatch, distinct from the range and length checks
// that run afterwards.

// AsString accepts a string.
func AsString(name string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", util.NewTypeError(name, raw, "a string")
	}
}

// AsInt accepts any integer kind, or a float with no fractional part (JSON
// numbers decode as float64).
func AsInt(name string, raw interface{}) (*int64, error) {
	var n int64
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return nil, util.NewTypeError(name, raw, "an integer")
		}
		n = int64(v)
	case float64:
		// 2^63 is exact in float64; anything at or beyond it would wrap.
		if v != math.Trunc(v) || v >= 1<<63 || v < -(1<<63) {
			return nil, util.NewTypeError(name, raw, "an integer")
		}
		n = int64(v)
	default:
		return nil, util.NewTypeError(name, raw, "an integer")
	}
	return &n, nil
}

// AsBool accepts a boolean.
func AsBool(name string, raw interface{}) (*bool, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	default:
		return nil, util.NewTypeError(name, raw, "a boolean")
	}
}

// AsStrings accepts a single string or a list of strings.
func AsStrings(name string, raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, util.NewTypeError(name, item, "a string or list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, util.NewTypeError(name, raw, "a string or list of strings")
	}
}

// AsInts accepts a single integer, a list of integers, or a string of
// space-separated integers ("14 19").
func AsInts(name string, raw interface{}) ([]int64, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		var out []int64
		for _, w := range strings.Fields(v) {
			n, err := strconv.ParseInt(w, 10, 64)
			if err != nil {
				return nil, util.NewTypeError(name, raw, "an integer or list of integers")
			}
			out = append(out, n)
		}
		return out, nil
	case []interface{}:
		out := make([]int64, 0, len(v))
		for _, item := range v {
			n, err := AsInt(name, item)
			if err != nil || n == nil {
				return nil, util.NewTypeError(name, item, "an integer or list of integers")
			}
			out = append(out, *n)
		}
		return out, nil
	case []int64:
		return v, nil
	default:
		n, err := AsInt(name, raw)
		if err != nil {
			return nil, util.NewTypeError(name, raw, "an integer or list of integers")
		}
		return []int64{*n}, nil
	}
}
