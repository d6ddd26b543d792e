// Package hierarchy builds treemap, sunburst and circle packing chart specs
// from flat datasets.
package hierarchy

import "log/slog"

// Options configures build behavior.
type Options struct {
	// Registry maps chart types to their pipelines.
	// If nil, DefaultRegistry() is used.
	Registry *Registry
	// Logger receives debug and warning output.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// Concurrency bounds the parallel tree build. 0 or 1 builds sequentially.
	Concurrency int
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Registry: DefaultRegistry(),
	}
}

func (o Options) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
