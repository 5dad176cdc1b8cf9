package fluentcheck

import "strings"

// JoinPath joins property path segments with dots, skipping empty segments.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// rebase returns copies of errs with prefix prepended to every path. Nested
// validators collect into a temporary sink and merge through rebase, so each
// level adds exactly one segment.
func rebase(prefix string, errs Errors) Errors {
	out := make(Errors, len(errs))
	for i, e := range errs {
		e.Path = JoinPath(prefix, e.Path)
		out[i] = e
	}
	return out
}

// ErrorAt builds a ValidationError for use in Custom predicates. The value is
// rendered the same way built-in checks render observed values.
func ErrorAt(path, kind string, value any, description string) *ValidationError {
	return &ValidationError{Kind: kind, Path: path, Value: renderValue(value), Description: description}
}
