package fluentcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/fluentcheck"
)

type innerShape struct {
	InnerProp string `json:"innerProp"`
}

type outerShape struct {
	Prop1 string     `json:"prop1"`
	Prop2 innerShape `json:"prop2"`
}

var testObject = outerShape{Prop1: "abcd", Prop2: innerShape{InnerProp: "inner"}}

func TestObject_AbsentValues(t *testing.T) {
	v, sink := newObject(nil)
	v.Property("prop1", func(p *fluentcheck.Property) { p.AsString().MaxLength(3) })
	e := single(t, sink)
	assert.Equal(t, "property", e.Kind)
	assert.Equal(t, "prop", e.Path)
	assert.Equal(t, "null", e.Value)
	assert.Equal(t, "the value was null when it should not have been", e.Description)

	v, sink = newObject(fluentcheck.Undefined)
	v.Property("prop1", func(p *fluentcheck.Property) { p.AsString().MaxLength(3) })
	e = single(t, sink)
	assert.Equal(t, "property", e.Kind)
	assert.Equal(t, "undefined", e.Value)
}

func TestObject_Property(t *testing.T) {
	v, sink := newObject(testObject)
	v.Property("prop1", func(p *fluentcheck.Property) { p.AsString().MaxLength(4) })
	assert.Zero(t, sink.Len())

	v, sink = newObject(testObject)
	v.Property("prop1", func(p *fluentcheck.Property) { p.AsString().MaxLength(3) })
	e := single(t, sink)
	assert.Equal(t, fluentcheck.ValidationError{
		Kind:        "maxLength",
		Path:        "prop.prop1",
		Value:       "abcd",
		Description: "value should have been no more than '3' characters",
	}, e)
}

func TestObject_NestedProperty(t *testing.T) {
	v, sink := newObject(testObject)
	v.Property("prop2", func(p *fluentcheck.Property) {
		p.AsObject().Property("innerProp", func(ip *fluentcheck.Property) {
			ip.AsString().MaxLength(3)
		})
	})
	e := single(t, sink)
	assert.Equal(t, "prop.prop2.innerProp", e.Path)
	assert.Equal(t, "inner", e.Value)
}

func TestObject_MapAndStructAgree(t *testing.T) {
	asMap := map[string]any{"prop1": "abcd", "prop2": map[string]any{"innerProp": "inner"}}
	check := func(v *fluentcheck.ObjectValidator) {
		v.Property("prop2", func(p *fluentcheck.Property) {
			p.AsObject().Property("innerProp", func(ip *fluentcheck.Property) { ip.AsString().MinLength(6) })
		})
	}
	sv, structSink := newObject(&testObject)
	check(sv)
	mv, mapSink := newObject(asMap)
	check(mv)
	assert.Equal(t, structSink.Errors(), mapSink.Errors())
}

func TestObject_MissingProperty(t *testing.T) {
	v, sink := newObject(map[string]any{})
	v.Property("name", func(p *fluentcheck.Property) {
		assert.True(t, fluentcheck.IsUndefined(p.Value()))
		p.IsNotUndefined()
	})
	e := single(t, sink)
	assert.Equal(t, "isNotUndefined", e.Kind)
	assert.Equal(t, "prop.name", e.Path)
}

func TestObject_SiblingsOrdered(t *testing.T) {
	v, sink := newObject(map[string]any{"a": "xxx", "b": "yyy"})
	v.
		Property("b", func(p *fluentcheck.Property) { p.AsString().MaxLength(1) }).
		Property("a", func(p *fluentcheck.Property) { p.AsString().MaxLength(1) })
	errs := sink.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "prop.b", errs[0].Path)
	assert.Equal(t, "prop.a", errs[1].Path)
}

func TestObject_TypeMismatch(t *testing.T) {
	v, sink := newObject([]int{1})
	v.Property("x", func(*fluentcheck.Property) { t.Fatal("callback must not run") })
	e := single(t, sink)
	assert.Equal(t, "property", e.Kind)
	assert.Equal(t, "the value was of type array when it should have been of type object", e.Description)
}
