package fluentcheck

import "log/slog"

// Option configures a Validator at construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives one debug record per pass.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// ValidateOpt bundles per-call options for Validate.
type ValidateOpt struct {
	// ThrowOnError turns a failed pass into a *FailedError return.
	ThrowOnError bool
}

func mergeValidateOpts(opts []ValidateOpt) ValidateOpt {
	var out ValidateOpt
	for _, o := range opts {
		out.ThrowOnError = out.ThrowOnError || o.ThrowOnError
	}
	return out
}
