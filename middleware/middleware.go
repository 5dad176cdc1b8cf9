// Package middleware validates HTTP request bodies with a fluentcheck
// Validator before they reach a handler.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/reoring/fluentcheck"
	"github.com/reoring/fluentcheck/document"
)

type ctxKeyDocument struct{}

// Document is the decoded body and the result of validating it.
type Document struct {
	Value  any
	Result fluentcheck.Result
}

// ContextWithDocument attaches a validated Document to the context.
func ContextWithDocument(ctx context.Context, d Document) context.Context {
	return context.WithValue(ctx, ctxKeyDocument{}, d)
}

// DocumentFromContext retrieves the Document stored by ValidateJSON.
func DocumentFromContext(ctx context.Context) (Document, bool) {
	d, ok := ctx.Value(ctxKeyDocument{}).(Document)
	return d, ok
}

// ErrorPayload shapes validation errors for JSON responses.
func ErrorPayload(errs fluentcheck.Errors) map[string]any {
	return map[string]any{"errors": errs}
}

// DefaultMaxBodyBytes caps request bodies read by ValidateJSON.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures ValidateJSON.
type Option func(*config)

type config struct {
	maxBodyBytes int64
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// ValidateJSON decodes the request body as JSON, validates it with v and
// stores the Document in the request context on success. Undecodable bodies
// and failed validations are answered with 400, oversized bodies with 413.
func ValidateJSON(v *fluentcheck.Validator[any], opts ...Option) func(http.Handler) http.Handler {
	cfg := config{maxBodyBytes: DefaultMaxBodyBytes}
	for _, o := range opts {
		o(&cfg)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cfg.maxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": err.Error()})
					return
				}
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}
			doc, err := document.Decode(body, document.FormatJSON)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}
			res, err := v.Validate(doc)
			if err != nil {
				if errs, ok := fluentcheck.AsErrors(err); ok {
					writeJSON(w, http.StatusBadRequest, ErrorPayload(errs))
					return
				}
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			if !res.Valid {
				writeJSON(w, http.StatusBadRequest, ErrorPayload(res.Errors))
				return
			}
			ctx := ContextWithDocument(r.Context(), Document{Value: doc, Result: res})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
