package fluentcheck

import (
	"reflect"
	"strconv"

	"github.com/reoring/fluentcheck/internal/messages"
)

// BooleanValidator checks bool values.
type BooleanValidator struct{ base }

func (v *BooleanValidator) Variant() Variant { return VariantBoolean }

func (v *BooleanValidator) expect(kind string, want bool, message []string) *BooleanValidator {
	if !v.guard(kind, VariantBoolean) {
		return v
	}
	if got := reflect.ValueOf(deref(v.value)).Bool(); got != want {
		v.push(kind, strconv.FormatBool(got), messages.Pick(message, kind, nil))
	}
	return v
}

// IsTrue fails when the value is false.
func (v *BooleanValidator) IsTrue(message ...string) *BooleanValidator {
	return v.expect(KindIsTrue, true, message)
}

// IsFalse fails when the value is true.
func (v *BooleanValidator) IsFalse(message ...string) *BooleanValidator {
	return v.expect(KindIsFalse, false, message)
}

func (v *BooleanValidator) IsNull(message ...string) *BooleanValidator {
	v.isNull(message)
	return v
}

func (v *BooleanValidator) IsNotNull(message ...string) *BooleanValidator {
	v.isNotNull(message)
	return v
}

func (v *BooleanValidator) IsUndefined(message ...string) *BooleanValidator {
	v.isUndefined(message)
	return v
}

func (v *BooleanValidator) IsNotUndefined(message ...string) *BooleanValidator {
	v.isNotUndefined(message)
	return v
}

func (v *BooleanValidator) Custom(fn CustomFunc) *BooleanValidator {
	v.custom(fn)
	return v
}
