package hierarchy

import (
	"errors"
	"log/slog"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/pipeline"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/tree"
)

// Field names bound on every hierarchical spec.
const (
	CategoryField = "name"
	ValueField    = "value"
)

// TooltipPathSeparator joins ancestor names in tooltip titles.
const TooltipPathSeparator = " / "

var errTreeMissing = errors.New("spec has no tree data; buildTreeData must run first")

// SpecContext is the read-only context shared by spec stages.
type SpecContext struct {
	Request *models.Request
	Model   *models.Model
	Logger  *slog.Logger
	// Concurrency bounds the parallel tree build.
	Concurrency int
}

// SpecStage is one step of a spec-building pipeline.
type SpecStage = pipeline.Stage[models.Spec, SpecContext]

// Assembler applies one chart type's structural and visual policy to a
// spec that already carries the built tree and shared defaults.
type Assembler interface {
	// ChartType returns the chart type the assembler produces.
	ChartType() models.ChartType
	// Assemble returns the final spec.
	Assemble(spec models.Spec, req *models.Request, model *models.Model) (models.Spec, error)
}

// SpecPipeline returns the spec-building pipeline ending in a.
func SpecPipeline(a Assembler) pipeline.Pipeline[models.Spec, SpecContext] {
	return pipeline.New(string(a.ChartType()),
		pipeline.NewStage("buildTreeData", buildTreeData),
		pipeline.NewStage("applyColorScheme", applyColorScheme),
		pipeline.NewStage("applyLabels", applyLabels),
		pipeline.NewStage("applyTooltip", applyTooltip),
		pipeline.NewStage("assemble", func(s models.Spec, ctx SpecContext) (models.Spec, error) {
			return a.Assemble(s, ctx.Request, ctx.Model)
		}),
	)
}

func buildTreeData(s models.Spec, ctx SpecContext) (models.Spec, error) {
	m := ctx.Model
	root := tree.BuildConcurrent(m.Dataset, m.DimensionIDs(), m.MeasureField, ctx.Concurrency)
	s.Data = []models.SpecData{{ID: models.DataID, Values: []models.TreeNode{root}}}
	return s, nil
}

func applyColorScheme(s models.Spec, ctx SpecContext) (models.Spec, error) {
	cs := ctx.Model.ColorScheme
	s.Color = &cs
	return s, nil
}

func applyLabels(s models.Spec, ctx SpecContext) (models.Spec, error) {
	l := ctx.Model.LabelConfig
	s.Label = &l
	return s, nil
}

func applyTooltip(s models.Spec, ctx SpecContext) (models.Spec, error) {
	var t models.TooltipConfig
	if ctx.Request.Tooltip != nil {
		t = *ctx.Request.Tooltip
	} else {
		t = models.DefaultTooltipConfig()
	}
	s.Tooltip = &t
	return s, nil
}

// preamble binds the chart type and field names and returns the top-level
// nodes under the synthetic root.
func preamble(s models.Spec, t models.ChartType) (models.Spec, []models.TreeNode, error) {
	values := s.Values()
	if len(values) == 0 {
		return s, nil, errTreeMissing
	}
	s.Type = t
	s.CategoryField = CategoryField
	s.ValueField = ValueField
	return s, tree.StripRoot(values[0]), nil
}

func withValues(s models.Spec, nodes []models.TreeNode) models.Spec {
	s.Data = []models.SpecData{{ID: models.DataID, Values: nodes}}
	return s
}

// withDrill resolves drill-down against the chart type's default.
func withDrill(s models.Spec, req *models.Request, def bool) models.Spec {
	enabled := req.DrillEnabled(def)
	s.Drill = &enabled
	s.DrillField = ""
	if enabled {
		s.DrillField = req.DrillFieldOrDefault()
	}
	return s
}

// withPathTooltip makes tooltip titles show the node's ancestor path.
func withPathTooltip(s models.Spec) models.Spec {
	var t models.TooltipConfig
	if s.Tooltip != nil {
		t = *s.Tooltip
	}
	t.Mark = &models.TooltipMark{
		Title: models.TooltipTitle{Value: models.AncestorPathTitle(TooltipPathSeparator)},
	}
	s.Tooltip = &t
	return s
}
