package fluentcheck

import "reflect"

// FieldToken identifies a top-level struct field of T by its resolved key.
// Obtain it via FieldOf to ensure compile-time linkage to the struct field.
type FieldToken[T any] struct {
	key string
}

// Key returns the property key associated with this field token.
func (t FieldToken[T]) Key() string { return t.key }

// FieldOf builds a FieldToken for a top-level field of T.
// The selector must return the address of a top-level field, e.g.:
//
//	FieldOf[Order](func(o *Order) *string { return &o.Status })
//
// This guarantees compile-time errors if the field is renamed/removed.
func FieldOf[T any, F any](selector func(*T) *F) FieldToken[T] {
	return FieldToken[T]{key: fieldKey[T, F]("fluentcheck.FieldOf", selector)}
}

// FieldNameOf returns the property key for a top-level field of S selected by
// selector. It is the untyped counterpart of FieldOf, suited to nested
// ObjectValidator.Property calls.
// Example: FieldNameOf[Address](func(a *Address) *string { return &a.City }) -> "city".
func FieldNameOf[S any, F any](selector func(*S) *F) string {
	return fieldKey[S, F]("fluentcheck.FieldNameOf", selector)
}

func fieldKey[S any, F any](caller string, selector func(*S) *F) string {
	if selector == nil {
		panic(caller + ": selector must not be nil")
	}
	var zero S
	rv := reflect.ValueOf(&zero).Elem()
	if rv.Kind() != reflect.Struct {
		panic(caller + ": type parameter must be a struct")
	}
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				panic(caller + ": selected field is disabled")
			}
			return name
		}
	}
	panic(caller + ": selector must return address of a top-level field")
}
