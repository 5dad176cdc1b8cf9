package fluentcheck

import (
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/reoring/fluentcheck/internal/messages"
)

// StringValidator checks string values. Lengths count Unicode code points.
type StringValidator struct{ base }

func (v *StringValidator) Variant() Variant { return VariantString }

func (v *StringValidator) str() string { return reflect.ValueOf(deref(v.value)).String() }

// MaxLength fails when the string is longer than n.
func (v *StringValidator) MaxLength(n int, message ...string) *StringValidator {
	if !v.guard(KindMaxLength, VariantString) {
		return v
	}
	if s := v.str(); utf8.RuneCountInString(s) > n {
		v.push(KindMaxLength, s, messages.Pick(message, KindMaxLength, map[string]string{messages.Expected: strconv.Itoa(n)}))
	}
	return v
}

// MinLength fails when the string is shorter than n.
func (v *StringValidator) MinLength(n int, message ...string) *StringValidator {
	if !v.guard(KindMinLength, VariantString) {
		return v
	}
	if s := v.str(); utf8.RuneCountInString(s) < n {
		v.push(KindMinLength, s, messages.Pick(message, KindMinLength, map[string]string{messages.Expected: strconv.Itoa(n)}))
	}
	return v
}

// Regex fails when re does not match the string.
func (v *StringValidator) Regex(re *regexp.Regexp, message ...string) *StringValidator {
	if re == nil {
		panic("fluentcheck: Regex pattern must not be nil")
	}
	if !v.guard(KindRegex, VariantString) {
		return v
	}
	if s := v.str(); !re.MatchString(s) {
		v.push(KindRegex, s, messages.Pick(message, KindRegex, nil))
	}
	return v
}

// Pattern compiles expr and behaves like Regex. A malformed expression is
// recorded as a regex failure carrying the compile error.
func (v *StringValidator) Pattern(expr string, message ...string) *StringValidator {
	re, err := regexp.Compile(expr)
	if err != nil {
		v.push(KindRegex, renderValue(v.value), err.Error())
		return v
	}
	return v.Regex(re, message...)
}

func (v *StringValidator) IsNull(message ...string) *StringValidator {
	v.isNull(message)
	return v
}

func (v *StringValidator) IsNotNull(message ...string) *StringValidator {
	v.isNotNull(message)
	return v
}

func (v *StringValidator) IsUndefined(message ...string) *StringValidator {
	v.isUndefined(message)
	return v
}

func (v *StringValidator) IsNotUndefined(message ...string) *StringValidator {
	v.isNotUndefined(message)
	return v
}

func (v *StringValidator) Custom(fn CustomFunc) *StringValidator {
	v.custom(fn)
	return v
}
