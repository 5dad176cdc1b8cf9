package fluentcheck

import (
	"reflect"
	"strconv"

	"github.com/reoring/fluentcheck/internal/messages"
)

// ArrayValidator checks slices and arrays, as a whole and element by element.
type ArrayValidator struct{ base }

func (v *ArrayValidator) Variant() Variant { return VariantArray }

func (v *ArrayValidator) elems() reflect.Value { return reflect.ValueOf(deref(v.value)) }

// IsEmpty fails when the array has any element.
func (v *ArrayValidator) IsEmpty(message ...string) *ArrayValidator {
	if !v.guard(KindIsEmpty, VariantArray) {
		return v
	}
	if v.elems().Len() != 0 {
		v.push(KindIsEmpty, renderValue(v.value), messages.Pick(message, KindIsEmpty, nil))
	}
	return v
}

// MinLength fails when the array has fewer than n elements.
func (v *ArrayValidator) MinLength(n int, message ...string) *ArrayValidator {
	if !v.guard(KindMinLength, VariantArray) {
		return v
	}
	if v.elems().Len() < n {
		v.push(KindMinLength, renderValue(v.value), messages.Pick(message, "arrayMinLength", map[string]string{messages.Expected: strconv.Itoa(n)}))
	}
	return v
}

// MaxLength fails when the array has more than n elements.
func (v *ArrayValidator) MaxLength(n int, message ...string) *ArrayValidator {
	if !v.guard(KindMaxLength, VariantArray) {
		return v
	}
	if v.elems().Len() > n {
		v.push(KindMaxLength, renderValue(v.value), messages.Pick(message, "arrayMaxLength", map[string]string{messages.Expected: strconv.Itoa(n)}))
	}
	return v
}

// ForEach validates every element with fn. Element failures are not surfaced
// individually: when any element fails, exactly one "forEach" error is
// recorded for the array.
func (v *ArrayValidator) ForEach(fn func(*Property), message ...string) *ArrayValidator {
	if fn == nil {
		panic("fluentcheck: ForEach callback must not be nil")
	}
	if !v.guard(KindForEach, VariantArray) {
		return v
	}
	tmp := NewErrorSink()
	v.visit(fn, tmp)
	if tmp.Len() > 0 {
		v.push(KindForEach, renderValue(v.value), messages.Pick(message, KindForEach, nil))
	}
	return v
}

// Each validates every element with fn and keeps the element errors, with
// paths of the form "<array>.<index>[.<nested>]". Use it instead of ForEach
// when per-element diagnostics are wanted.
func (v *ArrayValidator) Each(fn func(*Property)) *ArrayValidator {
	if fn == nil {
		panic("fluentcheck: Each callback must not be nil")
	}
	if !v.guard(KindForEach, VariantArray) {
		return v
	}
	tmp := NewErrorSink()
	v.visit(fn, tmp)
	v.sink.Append(rebase(v.key, tmp.errs)...)
	return v
}

// visit runs fn for each element, keyed by its index, against sink.
func (v *ArrayValidator) visit(fn func(*Property), sink *ErrorSink) {
	rv := v.elems()
	for i := 0; i < rv.Len(); i++ {
		fn(newProperty(strconv.Itoa(i), rv.Index(i).Interface(), v.root, sink))
	}
}

func (v *ArrayValidator) IsNull(message ...string) *ArrayValidator {
	v.isNull(message)
	return v
}

func (v *ArrayValidator) IsNotNull(message ...string) *ArrayValidator {
	v.isNotNull(message)
	return v
}

func (v *ArrayValidator) IsUndefined(message ...string) *ArrayValidator {
	v.isUndefined(message)
	return v
}

func (v *ArrayValidator) IsNotUndefined(message ...string) *ArrayValidator {
	v.isNotUndefined(message)
	return v
}

func (v *ArrayValidator) Custom(fn CustomFunc) *ArrayValidator {
	v.custom(fn)
	return v
}
