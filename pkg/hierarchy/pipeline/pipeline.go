// Package pipeline runs ordered stages as a left-to-right fold.
package pipeline

import (
	"fmt"
	"log/slog"
)

// Stage transforms an accumulator using a shared, read-only context.
type Stage[A, C any] struct {
	// Name identifies the stage in logs and errors.
	Name string
	// Fn computes the next accumulator. It must not retain or mutate ctx.
	Fn func(acc A, ctx C) (A, error)
}

// NewStage pairs a name with a stage function.
func NewStage[A, C any](name string, fn func(A, C) (A, error)) Stage[A, C] {
	return Stage[A, C]{Name: name, Fn: fn}
}

// Pipeline is a named, fixed sequence of stages.
type Pipeline[A, C any] struct {
	Name   string
	Stages []Stage[A, C]
}

// New returns a pipeline over the given stages. The slice is copied.
func New[A, C any](name string, stages ...Stage[A, C]) Pipeline[A, C] {
	return Pipeline[A, C]{Name: name, Stages: append([]Stage[A, C](nil), stages...)}
}

// Len returns the number of stages.
func (p Pipeline[A, C]) Len() int {
	return len(p.Stages)
}

// Exec folds initial through every stage in order. The first failing stage
// aborts the run; its error is returned wrapped with the stage name and the
// zero accumulator is returned in place of any partial result.
func Exec[A, C any](p Pipeline[A, C], ctx C, initial A, logger *slog.Logger) (A, error) {
	if logger == nil {
		logger = slog.Default()
	}

	acc := initial
	for i, st := range p.Stages {
		logger.Debug("running stage",
			slog.String("pipeline", p.Name),
			slog.String("stage", st.Name),
			slog.Int("index", i),
		)
		next, err := st.Fn(acc, ctx)
		if err != nil {
			var zero A
			return zero, fmt.Errorf("%s: stage %s: %w", p.Name, st.Name, err)
		}
		acc = next
	}
	return acc, nil
}
