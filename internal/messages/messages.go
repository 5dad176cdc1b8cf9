// Package messages holds the default descriptions attached to validation
// errors when the caller does not supply one.
package messages

import "strings"

// Template parameters.
const (
	Expected = "expected" // bound or expected value
	Actual   = "actual"   // variant the value classified as
	Wanted   = "wanted"   // variant the operator requires
)

// Codes for the absence, type and range guards, which are not error kinds themselves.
const (
	NullValue       = "null_value"
	UndefinedValue  = "undefined_value"
	TypeMismatch    = "type_mismatch"
	Unrepresentable = "unrepresentable_number"
)

var templates = map[string]string{
	NullValue:       "the value was null when it should not have been",
	UndefinedValue:  "the value was undefined when it should not have been",
	TypeMismatch:    "the value was of type {actual} when it should have been of type {wanted}",
	Unrepresentable: "the value was a number that cannot be represented as a 64-bit float",

	"isNull":         "value should have been null",
	"isNotNull":      "value should not have been null",
	"isUndefined":    "value should have been undefined",
	"isNotUndefined": "value should not have been undefined",

	"maxLength": "value should have been no more than '{expected}' characters",
	"minLength": "value should have been no less than '{expected}' characters",
	"regex":     "the value provided did not match the regular expression",

	"equal":              "value should have been '{expected}'",
	"greaterThan":        "value should have been greater than '{expected}'",
	"greaterThanOrEqual": "value should have been greater than or equal to '{expected}'",
	"lessThan":           "value should have been less than '{expected}'",
	"lessThanOrEqual":    "value should have been less than or equal to '{expected}'",

	"isTrue":  "value should have been true",
	"isFalse": "value should have been false",

	"isEmpty":        "array should have been empty",
	"arrayMaxLength": "array should have had no more than '{expected}' elements",
	"arrayMinLength": "array should have had no less than '{expected}' elements",
	"forEach":        "one or more values did not pass the array element validation",
}

// T renders the template registered for code, substituting {name}
// placeholders from data. Unknown codes render as the code itself.
func T(code string, data map[string]string) string {
	tpl, ok := templates[code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(tpl, "{") {
		return tpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// Pick returns the first non-empty override, or the rendered template.
func Pick(overrides []string, code string, data map[string]string) string {
	for _, m := range overrides {
		if m != "" {
			return m
		}
	}
	return T(code, data)
}
