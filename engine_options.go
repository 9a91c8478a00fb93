package tuix

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the component registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger that receives warnings and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers an observer called after every draw.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithTheme sets the palette of the built-in components.
func WithTheme(t *Theme) Option {
	return func(e *Engine) {
		if t != nil {
			e.theme = t
		}
	}
}
