package hierarchy

import (
	"fmt"
	"strings"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/pipeline"
)

// Pipelines pairs the model-building and spec-building pipelines of one
// chart type.
type Pipelines struct {
	Model pipeline.Pipeline[models.Model, ModelContext]
	Spec  pipeline.Pipeline[models.Spec, SpecContext]
}

// Registry maps chart types to their pipelines. It is immutable.
type Registry = pipeline.Registry[models.ChartType, Pipelines]

// NewRegistry registers each assembler with the shared model pipeline.
func NewRegistry(assemblers ...Assembler) *Registry {
	entries := make(map[models.ChartType]Pipelines, len(assemblers))
	for _, a := range assemblers {
		entries[a.ChartType()] = Pipelines{
			Model: ModelPipeline(),
			Spec:  SpecPipeline(a),
		}
	}
	return pipeline.NewRegistry(entries)
}

var defaultRegistry = NewRegistry(Treemap{}, Sunburst{}, CirclePacking{})

// DefaultRegistry returns the registry of the built-in chart types.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func lookup(r *Registry, t models.ChartType) (Pipelines, error) {
	p, ok := r.Lookup(t)
	if !ok {
		known := make([]string, 0, len(r.Keys()))
		for _, k := range r.Keys() {
			known = append(known, string(k))
		}
		err := fmt.Errorf("%w (registered: %s)", ErrUnknownChartType, strings.Join(known, ", "))
		return Pipelines{}, NewConfigurationError("registry", string(t), err)
	}
	return p, nil
}
