package templatest

import "log/slog"

// Option configures a Registered (functional options pattern).
type Option func(*Registered)

// WithLogger sets the logger used for registration events.
// A nil logger leaves the default (slog.Default()) in place.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registered) {
		if logger != nil {
			r.logger = logger
		}
	}
}
