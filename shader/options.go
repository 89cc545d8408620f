package shader

import "log/slog"

// Option configures a Program at construction time.
type Option func(*options)

type options struct {
	name   string
	strict bool
	logger *slog.Logger
}

// WithName labels the program in errors and log records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStrictUniforms makes the program warn, once per name, about uniform
// names that do not resolve. Setting them stays a no-op either way.
func WithStrictUniforms(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithLogger sets the logger used for strict-mode warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{name: "program"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
