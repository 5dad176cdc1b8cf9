package fluentcheck

// NewPropertyValidator classifies value once and returns the matching variant,
// wired to sink. It is the single dispatch point used by the orchestrator and
// by nested object and array descent.
func NewPropertyValidator(key string, value, root any, sink *ErrorSink) PropertyValidator {
	b := base{key: key, value: value, root: root, sink: sink}
	switch Classify(value) {
	case VariantString:
		return &StringValidator{base: b}
	case VariantNumber:
		return &NumberValidator{base: b}
	case VariantBoolean:
		return &BooleanValidator{base: b}
	case VariantArray:
		return &ArrayValidator{base: b}
	case VariantObject:
		return &ObjectValidator{base: b}
	default:
		return &UnknownValidator{base: b}
	}
}

// Property is handed to validation callbacks. It carries the classified
// variant and exposes it through typed accessors.
//
// An accessor whose shape matches the classification returns the classified
// validator. Otherwise it returns a validator of the requested shape whose
// operators report the absent value or the type mismatch as errors of the
// invoked check, so a callback written for a string keeps working (and keeps
// reporting) when the input holds null, nothing, or a number.
type Property struct {
	b base
	v PropertyValidator
}

// NewProperty builds the callback handle for value at key, recording into
// sink. Validator and the nested validators create handles this way; it is
// exported for checking a single value without an orchestrator.
func NewProperty(key string, value, root any, sink *ErrorSink) *Property {
	if sink == nil {
		panic("fluentcheck: NewProperty sink must not be nil")
	}
	return newProperty(key, value, root, sink)
}

func newProperty(key string, value, root any, sink *ErrorSink) *Property {
	return &Property{
		b: base{key: key, value: value, root: root, sink: sink},
		v: NewPropertyValidator(key, value, root, sink),
	}
}

func (p *Property) Key() string { return p.b.key }

// Value returns the raw value, which may be nil or Undefined.
func (p *Property) Value() any { return p.b.value }

// Variant reports the classification of the value.
func (p *Property) Variant() Variant { return p.v.Variant() }

// Validator returns the classified variant, for type switches.
func (p *Property) Validator() PropertyValidator { return p.v }

func (p *Property) AsString() *StringValidator {
	if sv, ok := p.v.(*StringValidator); ok {
		return sv
	}
	return &StringValidator{base: p.b}
}

func (p *Property) AsNumber() *NumberValidator {
	if nv, ok := p.v.(*NumberValidator); ok {
		return nv
	}
	return &NumberValidator{base: p.b}
}

func (p *Property) AsBoolean() *BooleanValidator {
	if bv, ok := p.v.(*BooleanValidator); ok {
		return bv
	}
	return &BooleanValidator{base: p.b}
}

func (p *Property) AsArray() *ArrayValidator {
	if av, ok := p.v.(*ArrayValidator); ok {
		return av
	}
	return &ArrayValidator{base: p.b}
}

func (p *Property) AsObject() *ObjectValidator {
	if ov, ok := p.v.(*ObjectValidator); ok {
		return ov
	}
	return &ObjectValidator{base: p.b}
}

// AsUnknown returns a validator limited to the shared operations. It is
// valid for any value.
func (p *Property) AsUnknown() *UnknownValidator {
	if uv, ok := p.v.(*UnknownValidator); ok {
		return uv
	}
	return &UnknownValidator{base: p.b}
}

func (p *Property) IsNull(message ...string) *Property {
	p.b.isNull(message)
	return p
}

func (p *Property) IsNotNull(message ...string) *Property {
	p.b.isNotNull(message)
	return p
}

func (p *Property) IsUndefined(message ...string) *Property {
	p.b.isUndefined(message)
	return p
}

func (p *Property) IsNotUndefined(message ...string) *Property {
	p.b.isNotUndefined(message)
	return p
}

func (p *Property) Custom(fn CustomFunc) *Property {
	p.b.custom(fn)
	return p
}
