package fluentcheck_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/fluentcheck"
)

func TestNumber_Comparisons(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		op       func(*fluentcheck.NumberValidator)
		wantKind string
		wantDesc string
	}{
		{"equal ok", 11, func(v *fluentcheck.NumberValidator) { v.Equal(11) }, "", ""},
		{"equal fails", 12, func(v *fluentcheck.NumberValidator) { v.Equal(11) }, "equal", "value should have been '11'"},
		{"greaterThan ok", 13, func(v *fluentcheck.NumberValidator) { v.GreaterThan(12) }, "", ""},
		{"greaterThan equal fails", 12, func(v *fluentcheck.NumberValidator) { v.GreaterThan(12) }, "greaterThan", "value should have been greater than '12'"},
		{"greaterThanOrEqual ok", 12, func(v *fluentcheck.NumberValidator) { v.GreaterThanOrEqual(12) }, "", ""},
		{"greaterThanOrEqual fails", 11, func(v *fluentcheck.NumberValidator) { v.GreaterThanOrEqual(12) }, "greaterThanOrEqual", "value should have been greater than or equal to '12'"},
		{"lessThan ok", 11, func(v *fluentcheck.NumberValidator) { v.LessThan(12) }, "", ""},
		{"lessThan equal fails", 12, func(v *fluentcheck.NumberValidator) { v.LessThan(12) }, "lessThan", "value should have been less than '12'"},
		{"lessThanOrEqual ok", 12, func(v *fluentcheck.NumberValidator) { v.LessThanOrEqual(12) }, "", ""},
		{"lessThanOrEqual fails", 13, func(v *fluentcheck.NumberValidator) { v.LessThanOrEqual(12) }, "lessThanOrEqual", "value should have been less than or equal to '12'"},
		{"json.Number", json.Number("11"), func(v *fluentcheck.NumberValidator) { v.Equal(11) }, "", ""},
		{"float", 1.5, func(v *fluentcheck.NumberValidator) { v.LessThan(2) }, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, sink := newNumber(tc.value)
			tc.op(v)
			if tc.wantKind == "" {
				assert.Zero(t, sink.Len(), "errors: %v", sink.Errors())
				return
			}
			e := single(t, sink)
			assert.Equal(t, tc.wantKind, e.Kind)
			assert.Equal(t, "prop", e.Path)
			assert.Equal(t, tc.wantDesc, e.Description)
		})
	}
}

func TestNumber_ObservedValue(t *testing.T) {
	v, sink := newNumber(13)
	v.LessThanOrEqual(12)
	assert.Equal(t, "13", single(t, sink).Value)

	v, sink = newNumber(0.5)
	v.GreaterThan(1.25)
	e := single(t, sink)
	assert.Equal(t, "0.5", e.Value)
	assert.Equal(t, "value should have been greater than '1.25'", e.Description)
}

func TestNumber_AbsentValues(t *testing.T) {
	v, sink := newNumber(nil)
	v.Equal(1)
	e := single(t, sink)
	assert.Equal(t, "equal", e.Kind)
	assert.Equal(t, "null", e.Value)

	v, sink = newNumber(fluentcheck.Undefined)
	v.GreaterThan(1)
	e = single(t, sink)
	assert.Equal(t, "greaterThan", e.Kind)
	assert.Equal(t, "undefined", e.Value)
	assert.Equal(t, "the value was undefined when it should not have been", e.Description)
}

func TestNumber_ZeroIsPresent(t *testing.T) {
	v, sink := newNumber(0)
	v.Equal(0).IsNotNull().IsNotUndefined()
	assert.Zero(t, sink.Len())
}

func TestNumber_TypeMismatch(t *testing.T) {
	v, sink := newNumber("12")
	v.Equal(12)
	e := single(t, sink)
	assert.Equal(t, `"12"`, e.Value)
	assert.Equal(t, "the value was of type string when it should have been of type number", e.Description)
}

func TestNumber_OutOfRangeLiteral(t *testing.T) {
	v, sink := newNumber(json.Number("1e400"))
	assert.Equal(t, fluentcheck.VariantNumber, fluentcheck.Classify(json.Number("1e400")))
	v.GreaterThan(0)
	e := single(t, sink)
	assert.Equal(t, "greaterThan", e.Kind)
	assert.Equal(t, "1e400", e.Value)
	assert.Equal(t, "the value was a number that cannot be represented as a 64-bit float", e.Description)
}
