package fluentcheck

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	gojson "github.com/goccy/go-json"
)

type undefined struct{}

// Undefined marks a value that is absent: a missing map key, a struct without
// the requested field, or a property of an absent container.
var Undefined any = undefined{}

// MarshalJSON renders Undefined as null when it sits inside an encoded value.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (undefined) String() string { return "undefined" }

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNull reports whether v is nil or a nil pointer, map, slice, interface,
// func or chan.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isAbsent(v any) bool { return IsNull(v) || IsUndefined(v) }

// deref follows non-nil pointers so *string classifies as a string.
func deref(v any) any {
	for {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return v
		}
		v = rv.Elem().Interface()
	}
}

// jsonNumber reports whether v is a JSON number literal as produced by either
// encoding/json or goccy/go-json decoders with UseNumber.
func jsonNumber(v any) (json.Number, bool) {
	if n, ok := v.(json.Number); ok {
		return n, true
	}
	if n, ok := v.(gojson.Number); ok {
		return json.Number(n), true
	}
	return "", false
}

// Float64 returns v as a float64 when it classifies as a number. Callers
// comparing values of mixed numeric types (int, float64, json.Number) use it
// to compare by value.
func Float64(v any) (float64, bool) {
	if Classify(v) != VariantNumber {
		return 0, false
	}
	return toFloat(deref(v))
}

// toFloat converts any number-classified value to float64.
func toFloat(v any) (float64, bool) {
	if n, ok := jsonNumber(v); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// formatNumber renders f the way JavaScript's Number#toString does for the
// common cases: integral values without exponent, others in shortest form.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// renderValue produces the observed-value text of an error.
func renderValue(v any) string {
	switch {
	case IsUndefined(v):
		return "undefined"
	case IsNull(v):
		return "null"
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
