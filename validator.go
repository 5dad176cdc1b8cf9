package fluentcheck

import (
	"log/slog"
	"sync"
)

// Result is the outcome of one validation pass.
type Result struct {
	Valid  bool   `json:"isValid" yaml:"isValid"`
	Errors Errors `json:"errors" yaml:"errors"`
}

type binding struct {
	key string
	fn  func(*Property)
}

// Validator binds named properties of a T to validation callbacks. Bindings
// are evaluated only by Validate, so one Validator can check many values.
// Validate may be called concurrently; every call owns its error sink.
type Validator[T any] struct {
	mu       sync.RWMutex
	bindings []binding
	logger   *slog.Logger
}

// New returns an empty Validator for values of type T.
func New[T any](opts ...Option) *Validator[T] {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&cfg)
	}
	return &Validator[T]{logger: cfg.logger}
}

// Property registers fn for the property key of the validated value.
func (v *Validator[T]) Property(key string, fn func(*Property)) *Validator[T] {
	if fn == nil {
		panic("fluentcheck: Property callback must not be nil")
	}
	v.mu.Lock()
	v.bindings = append(v.bindings, binding{key: key, fn: fn})
	v.mu.Unlock()
	return v
}

// Field registers fn for the struct field identified by token.
func (v *Validator[T]) Field(token FieldToken[T], fn func(*Property)) *Validator[T] {
	return v.Property(token.Key(), fn)
}

// Validate runs every registered binding against value, in registration
// order, and returns the collected errors. With ThrowOnError set, a failed
// pass also returns a *FailedError carrying the same errors.
func (v *Validator[T]) Validate(value T, opts ...ValidateOpt) (Result, error) {
	opt := mergeValidateOpts(opts)

	v.mu.RLock()
	bindings := make([]binding, len(v.bindings))
	copy(bindings, v.bindings)
	v.mu.RUnlock()

	root := any(value)
	sink := NewErrorSink()
	for _, b := range bindings {
		b.fn(newProperty(b.key, Lookup(root, b.key), root, sink))
	}

	errs := sink.Errors()
	res := Result{Valid: len(errs) == 0, Errors: errs}
	v.logger.Debug("validation pass finished",
		slog.Int("bindings", len(bindings)),
		slog.Int("errors", len(errs)),
		slog.Bool("valid", res.Valid),
	)
	if opt.ThrowOnError && !res.Valid {
		return res, &FailedError{Errors: errs}
	}
	return res, nil
}

// MustValidate is like Validate with ThrowOnError but panics with the
// *FailedError instead of returning it.
func (v *Validator[T]) MustValidate(value T) Result {
	res, err := v.Validate(value, ValidateOpt{ThrowOnError: true})
	if err != nil {
		panic(err)
	}
	return res
}
