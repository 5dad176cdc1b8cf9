package fluentcheck

// UnknownValidator is the fallback for values no other variant covers (funcs,
// chans, absent values). It offers only the shared operations.
type UnknownValidator struct{ base }

func (v *UnknownValidator) Variant() Variant { return VariantUnknown }

func (v *UnknownValidator) IsNull(message ...string) *UnknownValidator {
	v.isNull(message)
	return v
}

func (v *UnknownValidator) IsNotNull(message ...string) *UnknownValidator {
	v.isNotNull(message)
	return v
}

func (v *UnknownValidator) IsUndefined(message ...string) *UnknownValidator {
	v.isUndefined(message)
	return v
}

func (v *UnknownValidator) IsNotUndefined(message ...string) *UnknownValidator {
	v.isNotUndefined(message)
	return v
}

func (v *UnknownValidator) Custom(fn CustomFunc) *UnknownValidator {
	v.custom(fn)
	return v
}
