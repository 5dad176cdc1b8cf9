package fluentcheck

// ObjectValidator descends into the properties of structs and string-keyed
// maps.
type ObjectValidator struct{ base }

func (v *ObjectValidator) Variant() Variant { return VariantObject }

// Property validates value[key] with fn. Child errors are collected on a
// temporary sink and merged with this object's key prepended to their paths.
// An absent object records a single "property" error at the object's own path.
func (v *ObjectValidator) Property(key string, fn func(*Property)) *ObjectValidator {
	if fn == nil {
		panic("fluentcheck: Property callback must not be nil")
	}
	if !v.guard(KindProperty, VariantObject) {
		return v
	}
	tmp := NewErrorSink()
	fn(newProperty(key, Lookup(v.value, key), v.root, tmp))
	v.sink.Append(rebase(v.key, tmp.errs)...)
	return v
}

func (v *ObjectValidator) IsNull(message ...string) *ObjectValidator {
	v.isNull(message)
	return v
}

func (v *ObjectValidator) IsNotNull(message ...string) *ObjectValidator {
	v.isNotNull(message)
	return v
}

func (v *ObjectValidator) IsUndefined(message ...string) *ObjectValidator {
	v.isUndefined(message)
	return v
}

func (v *ObjectValidator) IsNotUndefined(message ...string) *ObjectValidator {
	v.isNotUndefined(message)
	return v
}

func (v *ObjectValidator) Custom(fn CustomFunc) *ObjectValidator {
	v.custom(fn)
	return v
}
