package fluentcheck

import (
	"encoding/json"

	"github.com/reoring/fluentcheck/internal/messages"
)

// NumberValidator checks numeric values of any Go numeric kind and
// json.Number. Comparisons run in float64.
type NumberValidator struct{ base }

func (v *NumberValidator) Variant() Variant { return VariantNumber }

// compare records kind when ok(value) is false.
func (v *NumberValidator) compare(kind string, expected float64, ok func(got float64) bool, message []string) *NumberValidator {
	if !v.guard(kind, VariantNumber) {
		return v
	}
	got, valid := toFloat(deref(v.value))
	if !valid {
		// json.Number outside the float64 range or not a numeric literal
		v.push(kind, string(numberLiteral(v.value)), messages.T(messages.Unrepresentable, nil))
		return v
	}
	if !ok(got) {
		v.push(kind, formatNumber(got), messages.Pick(message, kind, map[string]string{messages.Expected: formatNumber(expected)}))
	}
	return v
}

func (v *NumberValidator) Equal(expected float64, message ...string) *NumberValidator {
	return v.compare(KindEqual, expected, func(got float64) bool { return got == expected }, message)
}

func (v *NumberValidator) GreaterThan(expected float64, message ...string) *NumberValidator {
	return v.compare(KindGreaterThan, expected, func(got float64) bool { return got > expected }, message)
}

func (v *NumberValidator) GreaterThanOrEqual(expected float64, message ...string) *NumberValidator {
	return v.compare(KindGreaterThanOrEqual, expected, func(got float64) bool { return got >= expected }, message)
}

func (v *NumberValidator) LessThan(expected float64, message ...string) *NumberValidator {
	return v.compare(KindLessThan, expected, func(got float64) bool { return got < expected }, message)
}

func (v *NumberValidator) LessThanOrEqual(expected float64, message ...string) *NumberValidator {
	return v.compare(KindLessThanOrEqual, expected, func(got float64) bool { return got <= expected }, message)
}

func (v *NumberValidator) IsNull(message ...string) *NumberValidator {
	v.isNull(message)
	return v
}

func (v *NumberValidator) IsNotNull(message ...string) *NumberValidator {
	v.isNotNull(message)
	return v
}

func (v *NumberValidator) IsUndefined(message ...string) *NumberValidator {
	v.isUndefined(message)
	return v
}

func (v *NumberValidator) IsNotUndefined(message ...string) *NumberValidator {
	v.isNotUndefined(message)
	return v
}

func (v *NumberValidator) Custom(fn CustomFunc) *NumberValidator {
	v.custom(fn)
	return v
}

func numberLiteral(v any) json.Number {
	n, _ := jsonNumber(deref(v))
	return n
}
