package fluentcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Error kinds (exported consts for IDE completion and type safety by convention)
const (
	KindIsNull         = "isNull"
	KindIsNotNull      = "isNotNull"
	KindIsUndefined    = "isUndefined"
	KindIsNotUndefined = "isNotUndefined"
	// String and array bounds
	KindMaxLength = "maxLength"
	KindMinLength = "minLength"
	KindRegex     = "regex"
	// Number comparisons
	KindEqual              = "equal"
	KindGreaterThan        = "greaterThan"
	KindGreaterThanOrEqual = "greaterThanOrEqual"
	KindLessThan           = "lessThan"
	KindLessThanOrEqual    = "lessThanOrEqual"
	// Boolean
	KindIsTrue  = "isTrue"
	KindIsFalse = "isFalse"
	// Containers
	KindIsEmpty  = "isEmpty"
	KindForEach  = "forEach"
	KindProperty = "property"
)

// ValidationError represents a single failed check.
type ValidationError struct {
	Kind        string `json:"error" yaml:"error"`       // One of the kinds listed above, or a caller-defined kind.
	Path        string `json:"property" yaml:"property"` // Dot-delimited, relative to the validated root (for example: prop4.nestedProp3).
	Value       string `json:"value" yaml:"value"`       // Rendered offending value, or the literal null / undefined.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s at %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.Description)
}

// Errors is an ordered collection of validation errors that implements error.
type Errors []ValidationError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. minLength at prop1
		fmt.Fprintf(b, "%s at %s", es[i].Kind, es[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any error was recorded at path.
func (es Errors) Has(path string) bool {
	for _, e := range es {
		if e.Path == path {
			return true
		}
	}
	return false
}

// ByPath returns the errors recorded at path, in insertion order.
func (es Errors) ByPath(path string) Errors {
	var out Errors
	for _, e := range es {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}

// Kinds returns the error kinds in insertion order.
func (es Errors) Kinds() []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Kind)
	}
	return out
}

// ErrorSink is the append-only collection shared by every validator created
// during one pass. It is not safe for concurrent use.
type ErrorSink struct {
	errs Errors
}

// NewErrorSink returns an empty sink.
func NewErrorSink() *ErrorSink { return &ErrorSink{errs: Errors{}} }

// Append records errors in call order.
func (s *ErrorSink) Append(more ...ValidationError) {
	s.errs = append(s.errs, more...)
}

// Len returns the number of recorded errors.
func (s *ErrorSink) Len() int { return len(s.errs) }

// Errors returns a copy of the recorded errors. The result is never nil.
func (s *ErrorSink) Errors() Errors {
	out := make(Errors, len(s.errs))
	copy(out, s.errs)
	return out
}

// FailedError is returned by Validate when ThrowOnError is set and at least one
// check failed. Its message is the JSON encoding of the error list.
type FailedError struct {
	Errors Errors
}

func (e *FailedError) Error() string {
	b, err := json.Marshal(e.Errors)
	if err != nil {
		return e.Errors.Error()
	}
	return string(b)
}

// Unwrap exposes the error list to errors.As.
func (e *FailedError) Unwrap() error { return e.Errors }

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}
