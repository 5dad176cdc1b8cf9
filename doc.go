// Package fluentcheck provides:
//
// - Fluent, per-property validation of structs and decoded documents (maps, slices, primitives)
// - A flat error model: ValidationError (kind, dot path, observed value, description)
// - Absence-safe operators: checks on null or undefined values report an error instead of failing
// - Recursive descent into nested objects and arrays with root-relative paths
//
// Design policy:
// - Keep the validators and the orchestrator in the root package; helpers live in rules/ and document/.
// - Classify a value once, when its validator is built, and hand callbacks the matching variant.
// - Failures are data. Only Validate with ThrowOnError returns an error.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := fluentcheck.New[Signup]().
//		Property("email", func(p *fluentcheck.Property) {
//			p.AsString().MinLength(3).Pattern(`^[^@]+@[^@]+$`)
//		}).
//		Property("address", func(p *fluentcheck.Property) {
//			p.AsObject().Property("city", func(c *fluentcheck.Property) {
//				c.AsString().MaxLength(40)
//			})
//		})
//
//	res, err := v.Validate(input)
//	res, err = v.Validate(input, fluentcheck.ValidateOpt{ThrowOnError: true})
package fluentcheck
