package fluentcheck

import "reflect"

// Variant is the validator variant selected for a value.
type Variant int

const (
	VariantUnknown Variant = iota // Anything not covered below, including absent values.
	VariantString
	VariantNumber
	VariantBoolean
	VariantArray
	VariantObject
)

func (k Variant) String() string {
	switch k {
	case VariantString:
		return "string"
	case VariantNumber:
		return "number"
	case VariantBoolean:
		return "boolean"
	case VariantArray:
		return "array"
	case VariantObject:
		return "object"
	default:
		return "unknown"
	}
}

// Classify maps a runtime value to its variant. Arrays are recognized before
// objects; json.Number counts as a number even though it is a string type.
func Classify(v any) Variant {
	if isAbsent(v) {
		return VariantUnknown
	}
	v = deref(v)
	if _, ok := jsonNumber(v); ok {
		return VariantNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return VariantString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return VariantNumber
	case reflect.Bool:
		return VariantBoolean
	case reflect.Slice, reflect.Array:
		return VariantArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return VariantObject
		}
	case reflect.Struct:
		return VariantObject
	}
	return VariantUnknown
}
