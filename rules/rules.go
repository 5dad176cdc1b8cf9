// Package rules offers ready-made predicates for the Custom operator. Each
// constructor takes the path its errors should carry, because a predicate
// sees only the value and the root.
package rules

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/reoring/fluentcheck"
)

// Error kinds produced by this package.
const (
	KindOneOf    = "oneOf"
	KindSameAs   = "sameAs"
	KindUUID     = "uuid"
	KindUnique   = "unique"
	KindNotBlank = "notBlank"
)

// OneOf fails unless the value equals one of allowed. Pointers are followed
// before comparing.
func OneOf(path string, allowed ...any) fluentcheck.CustomFunc {
	return func(value, _ any) *fluentcheck.ValidationError {
		got := indirect(value)
		for _, a := range allowed {
			if equal(got, indirect(a)) {
				return nil
			}
		}
		opts := make([]string, 0, len(allowed))
		for _, a := range allowed {
			opts = append(opts, fmt.Sprint(indirect(a)))
		}
		return fluentcheck.ErrorAt(path, KindOneOf, value, "value should have been one of: "+strings.Join(opts, ", "))
	}
}

// SameAs fails unless the value equals the property at otherPath of the root.
// It is the usual shape of a cross-field rule such as password confirmation.
func SameAs(path, otherPath string) fluentcheck.CustomFunc {
	return func(value, root any) *fluentcheck.ValidationError {
		other := fluentcheck.LookupPath(root, otherPath)
		if equal(indirect(value), indirect(other)) {
			return nil
		}
		return fluentcheck.ErrorAt(path, KindSameAs, value, fmt.Sprintf("value should have matched '%s'", otherPath))
	}
}

// UUID fails unless the value is a string holding a UUID in any of the forms
// accepted by uuid.Parse.
func UUID(path string) fluentcheck.CustomFunc {
	return func(value, _ any) *fluentcheck.ValidationError {
		s, ok := indirect(value).(string)
		if ok {
			if _, err := uuid.Parse(s); err == nil {
				return nil
			}
		}
		return fluentcheck.ErrorAt(path, KindUUID, value, "value should have been a UUID")
	}
}

// NotBlank fails unless the value is a string with at least one
// non-whitespace character.
func NotBlank(path string) fluentcheck.CustomFunc {
	return func(value, _ any) *fluentcheck.ValidationError {
		if s, ok := indirect(value).(string); ok && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			return nil
		}
		return fluentcheck.ErrorAt(path, KindNotBlank, value, "value should not have been blank")
	}
}

// UniqueBy ensures elements of the array value have distinct values at
// keyPath (a dot path inside each element, e.g. "sku"). The first duplicate
// is reported with its index in the description. Non-array values pass; pair
// the rule with an array check when the shape matters.
// Numeric keys collide by value (1, 1.0 and json.Number("1") are one key);
// other keys are compared by their fmt.Sprint rendering.
func UniqueBy(path, keyPath string) fluentcheck.CustomFunc {
	return func(value, _ any) *fluentcheck.ValidationError {
		if fluentcheck.Classify(value) != fluentcheck.VariantArray {
			return nil
		}
		rv := reflect.ValueOf(indirect(value))
		seen := map[string]int{}
		for i := 0; i < rv.Len(); i++ {
			kv := fluentcheck.LookupPath(rv.Index(i).Interface(), keyPath)
			if fluentcheck.IsUndefined(kv) {
				continue
			}
			k := key(kv)
			if first, dup := seen[k]; dup {
				return fluentcheck.ErrorAt(path, KindUnique, value,
					fmt.Sprintf("element %d duplicates element %d on '%s'", i, first, keyPath))
			}
			seen[k] = i
		}
		return nil
	}
}

func indirect(v any) any {
	for {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return v
		}
		v = rv.Elem().Interface()
	}
}

// key renders a UniqueBy key. Numbers get their own namespace so that the
// number 1 and the string "1" stay distinct.
func key(v any) string {
	if f, ok := fluentcheck.Float64(v); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "v:" + fmt.Sprint(indirect(v))
}

// equal compares numbers by value across Go numeric types and json.Number,
// everything else by Go equality.
func equal(a, b any) bool {
	fa, aNum := fluentcheck.Float64(a)
	fb, bNum := fluentcheck.Float64(b)
	if aNum && bNum {
		return fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
