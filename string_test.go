package fluentcheck_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/fluentcheck"
)

func TestString_AbsentValues(t *testing.T) {
	ops := map[string]func(*fluentcheck.StringValidator){
		"maxLength": func(v *fluentcheck.StringValidator) { v.MaxLength(3) },
		"minLength": func(v *fluentcheck.StringValidator) { v.MinLength(3) },
		"regex":     func(v *fluentcheck.StringValidator) { v.Regex(regexp.MustCompile(`a`)) },
	}
	for kind, op := range ops {
		t.Run(kind+"/null", func(t *testing.T) {
			v, sink := newString(nil)
			op(v)
			e := single(t, sink)
			assert.Equal(t, kind, e.Kind)
			assert.Equal(t, "prop", e.Path)
			assert.Equal(t, "null", e.Value)
			assert.Equal(t, "the value was null when it should not have been", e.Description)
		})
		t.Run(kind+"/undefined", func(t *testing.T) {
			v, sink := newString(fluentcheck.Undefined)
			op(v)
			e := single(t, sink)
			assert.Equal(t, kind, e.Kind)
			assert.Equal(t, "undefined", e.Value)
			assert.Equal(t, "the value was undefined when it should not have been", e.Description)
		})
	}
}

func TestString_MaxLength(t *testing.T) {
	v, sink := newString("abc")
	v.MaxLength(3).MaxLength(4)
	assert.Zero(t, sink.Len())

	v, sink = newString("abcabcabc")
	v.MaxLength(3)
	e := single(t, sink)
	assert.Equal(t, "maxLength", e.Kind)
	assert.Equal(t, "abcabcabc", e.Value)
	assert.Equal(t, "value should have been no more than '3' characters", e.Description)
}

func TestString_MinLength(t *testing.T) {
	v, sink := newString("abc")
	v.MinLength(3).MinLength(2)
	assert.Zero(t, sink.Len())

	v, sink = newString("abc")
	v.MinLength(4)
	e := single(t, sink)
	assert.Equal(t, "minLength", e.Kind)
	assert.Equal(t, "abc", e.Value)
	assert.Equal(t, "value should have been no less than '4' characters", e.Description)
}

func TestString_LengthCountsRunes(t *testing.T) {
	v, sink := newString("héllo")
	v.MaxLength(5)
	assert.Zero(t, sink.Len())
}

func TestString_Regex(t *testing.T) {
	v, sink := newString("abc")
	v.Regex(regexp.MustCompile(`^abc$`))
	assert.Zero(t, sink.Len())

	v, sink = newString("abc")
	v.Regex(regexp.MustCompile(`^abcd$`))
	e := single(t, sink)
	assert.Equal(t, "regex", e.Kind)
	assert.Equal(t, "abc", e.Value)
	assert.Equal(t, "the value provided did not match the regular expression", e.Description)
}

func TestString_Pattern(t *testing.T) {
	v, sink := newString("a@b")
	v.Pattern(`^[^@]+@[^@]+$`)
	assert.Zero(t, sink.Len())

	v, sink = newString("abc")
	v.Pattern(`(`)
	e := single(t, sink)
	assert.Equal(t, "regex", e.Kind)
	assert.Contains(t, e.Description, "missing closing )")
}

func TestString_TypeMismatch(t *testing.T) {
	v, sink := newString(12)
	v.MaxLength(3)
	e := single(t, sink)
	assert.Equal(t, "maxLength", e.Kind)
	assert.Equal(t, "12", e.Value)
	assert.Equal(t, "the value was of type number when it should have been of type string", e.Description)
}

func TestString_CustomMessage(t *testing.T) {
	v, sink := newString("abcd")
	v.MaxLength(3, "too long")
	assert.Equal(t, "too long", single(t, sink).Description)
}

func TestString_NamedStringType(t *testing.T) {
	type status string
	v, sink := newString(status("archived"))
	v.MaxLength(4)
	assert.Equal(t, "archived", single(t, sink).Value)
}
