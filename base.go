package fluentcheck

import "github.com/reoring/fluentcheck/internal/messages"

// CustomFunc inspects a property value with access to the root being
// validated. A non-nil result is recorded verbatim.
type CustomFunc func(value, root any) *ValidationError

// PropertyValidator is the closed set of validator variants produced by
// NewPropertyValidator: *StringValidator, *NumberValidator,
// *BooleanValidator, *ArrayValidator, *ObjectValidator and *UnknownValidator.
type PropertyValidator interface {
	Key() string
	Value() any
	Variant() Variant
	sealed()
}

// base carries the state shared by every variant. The sink pointer is the one
// owned by the running pass (or by a nested validator's temporary sink).
type base struct {
	key   string
	value any
	root  any
	sink  *ErrorSink
}

func (b *base) Key() string { return b.key }

// Value returns the raw value, which may be nil or Undefined.
func (b *base) Value() any { return b.value }

func (b *base) sealed() {}

func (b *base) push(kind, observed, description string) {
	b.sink.Append(ValidationError{Kind: kind, Path: b.key, Value: observed, Description: description})
}

// guard runs before every variant-specific operator. It records a check error
// and returns false when the value is null, undefined or of another variant.
func (b *base) guard(check string, want Variant) bool {
	switch {
	case IsUndefined(b.value):
		b.push(check, "undefined", messages.T(messages.UndefinedValue, nil))
		return false
	case IsNull(b.value):
		b.push(check, "null", messages.T(messages.NullValue, nil))
		return false
	}
	if got := Classify(b.value); want != VariantUnknown && got != want {
		b.push(check, renderValue(b.value), messages.T(messages.TypeMismatch, map[string]string{
			messages.Actual: got.String(),
			messages.Wanted: want.String(),
		}))
		return false
	}
	return true
}

func (b *base) isNull(message []string) {
	if !IsNull(b.value) {
		b.push(KindIsNull, renderValue(b.value), messages.Pick(message, KindIsNull, nil))
	}
}

func (b *base) isNotNull(message []string) {
	if IsNull(b.value) {
		b.push(KindIsNotNull, "null", messages.Pick(message, KindIsNotNull, nil))
	}
}

func (b *base) isUndefined(message []string) {
	if !IsUndefined(b.value) {
		b.push(KindIsUndefined, renderValue(b.value), messages.Pick(message, KindIsUndefined, nil))
	}
}

func (b *base) isNotUndefined(message []string) {
	if IsUndefined(b.value) {
		b.push(KindIsNotUndefined, "undefined", messages.Pick(message, KindIsNotUndefined, nil))
	}
}

func (b *base) custom(fn CustomFunc) {
	if fn == nil {
		panic("fluentcheck: Custom predicate must not be nil")
	}
	if ve := fn(b.value, b.root); ve != nil {
		b.sink.Append(*ve)
	}
}
