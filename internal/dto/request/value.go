package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Request payloads arrive with loosely typed values: clients send ids and
// durations as numbers or strings interchangeably, and null for absent
// fields. The helpers below coerce an untyped JSON value without ever
// failing hard; a malformed value is a reportable outcome, not a fault.

// present reports whether a value should be treated as set. Empty strings,
// zero numbers and nulls count as absent, matching how the API has always
// treated falsy input.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

// asString coerces a JSON value to a trimmed string.
func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

// asInt coerces a JSON value to an integer. A string must parse fully and
// a number must have no fractional part.
func asInt(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		return int64(val), true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// asBool coerces a JSON value to a boolean the way the API always has:
// anything truthy counts as true.
func asBool(v any) bool {
	return present(v)
}
