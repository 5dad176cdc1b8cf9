package fluentcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/fluentcheck"
)

// single asserts exactly one error was recorded and returns it.
func single(t *testing.T, sink *fluentcheck.ErrorSink) fluentcheck.ValidationError {
	t.Helper()
	errs := sink.Errors()
	require.Len(t, errs, 1, "errors: %v", errs)
	return errs[0]
}

func prop(value any) (*fluentcheck.Property, *fluentcheck.ErrorSink) {
	sink := fluentcheck.NewErrorSink()
	return fluentcheck.NewProperty("prop", value, nil, sink), sink
}

func newString(value any) (*fluentcheck.StringValidator, *fluentcheck.ErrorSink) {
	p, sink := prop(value)
	return p.AsString(), sink
}

func newNumber(value any) (*fluentcheck.NumberValidator, *fluentcheck.ErrorSink) {
	p, sink := prop(value)
	return p.AsNumber(), sink
}

func newBoolean(value any) (*fluentcheck.BooleanValidator, *fluentcheck.ErrorSink) {
	p, sink := prop(value)
	return p.AsBoolean(), sink
}

func newArray(value any) (*fluentcheck.ArrayValidator, *fluentcheck.ErrorSink) {
	p, sink := prop(value)
	return p.AsArray(), sink
}

func newObject(value any) (*fluentcheck.ObjectValidator, *fluentcheck.ErrorSink) {
	p, sink := prop(value)
	return p.AsObject(), sink
}
