package hierarchy

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/pipeline"
)

// Builder turns one request into a spec. It keeps its own copy of the
// request and the results of the last build.
type Builder struct {
	req   models.Request
	opts  Options
	model *models.Model
	spec  *models.Spec
}

// NewBuilder validates req and returns a Builder over a private copy of it.
func NewBuilder(req models.Request, opts Options) (*Builder, error) {
	if err := ValidateRequest(&req); err != nil {
		return nil, err
	}
	var own models.Request
	if err := deepcopy.Copy(&own, &req); err != nil {
		return nil, fmt.Errorf("copy request: %w", err)
	}
	return &Builder{req: own, opts: opts}, nil
}

// Build runs both pipelines for req.
func Build(req models.Request, opts Options) (*models.Spec, error) {
	b, err := NewBuilder(req, opts)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Request returns the builder's copy of the request.
func (b *Builder) Request() models.Request {
	return b.req
}

// Model returns the last built model, or nil.
func (b *Builder) Model() *models.Model {
	return b.model
}

// Spec returns the last built spec, or nil.
func (b *Builder) Spec() *models.Spec {
	return b.spec
}

// BuildModel runs the model-building pipeline of the request's chart type.
func (b *Builder) BuildModel() (*models.Model, error) {
	p, err := lookup(b.opts.registry(), b.req.ChartType)
	if err != nil {
		return nil, err
	}

	ctx := ModelContext{Request: &b.req, Logger: b.opts.logger()}
	m, err := pipeline.Exec(p.Model, ctx, models.Model{}, ctx.Logger)
	if err != nil {
		return nil, err
	}
	b.model = &m
	return b.model, nil
}

// BuildSpec runs the spec-building pipeline of the request's chart type
// over model.
func (b *Builder) BuildSpec(model *models.Model) (*models.Spec, error) {
	if model == nil {
		return nil, fmt.Errorf("build spec: nil model")
	}
	p, err := lookup(b.opts.registry(), b.req.ChartType)
	if err != nil {
		return nil, err
	}

	ctx := SpecContext{
		Request:     &b.req,
		Model:       model,
		Logger:      b.opts.logger(),
		Concurrency: b.opts.Concurrency,
	}
	s, err := pipeline.Exec(p.Spec, ctx, models.Spec{}, ctx.Logger)
	if err != nil {
		return nil, err
	}
	b.spec = &s
	return b.spec, nil
}

// Build runs BuildModel and then BuildSpec.
func (b *Builder) Build() (*models.Spec, error) {
	m, err := b.BuildModel()
	if err != nil {
		return nil, err
	}
	return b.BuildSpec(m)
}
