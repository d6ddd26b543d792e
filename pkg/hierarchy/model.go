package hierarchy

import (
	"log/slog"
	"slices"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/pipeline"
)

// ModelContext is the read-only context shared by model stages.
type ModelContext struct {
	Request *models.Request
	Logger  *slog.Logger
}

func (c ModelContext) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ModelStage is one step of a model-building pipeline.
type ModelStage = pipeline.Stage[models.Model, ModelContext]

// ModelPipeline returns the model-building pipeline shared by the
// hierarchical chart types.
func ModelPipeline() pipeline.Pipeline[models.Model, ModelContext] {
	return pipeline.New("model",
		pipeline.NewStage("initModel", initModel),
		pipeline.NewStage("identifyFields", identifyFields),
		pipeline.NewStage("buildMeasures", buildMeasures),
		pipeline.NewStage("buildDimensions", buildDimensions),
		pipeline.NewStage("buildColorConfig", buildColorConfig),
		pipeline.NewStage("buildLabelConfig", buildLabelConfig),
	)
}

func initModel(m models.Model, ctx ModelContext) (models.Model, error) {
	req := ctx.Request
	if req.ChartType == "" {
		return m, NewConfigurationError("model", "chartType", ErrChartTypeRequired)
	}
	if len(req.Dataset) == 0 {
		return m, NewConfigurationError("model", "dataset", ErrDatasetRequired)
	}
	m.ChartType = req.ChartType
	m.Dataset = req.Dataset
	return m, nil
}

func buildMeasures(m models.Model, _ ModelContext) (models.Model, error) {
	m.Measures = []models.FieldDescriptor{{ID: m.MeasureField, Alias: m.MeasureField}}
	return m, nil
}

func buildDimensions(m models.Model, _ ModelContext) (models.Model, error) {
	dims := make([]models.FieldDescriptor, len(m.DimensionFields))
	for i, f := range m.DimensionFields {
		dims[i] = models.FieldDescriptor{ID: f, Alias: f}
	}
	m.Dimensions = dims
	return m, nil
}

func buildColorConfig(m models.Model, ctx ModelContext) (models.Model, error) {
	if cs := ctx.Request.ColorScheme; cs != nil {
		m.ColorScheme = models.ColorScheme{Type: cs.Type, Range: slices.Clone(cs.Range)}
	} else {
		m.ColorScheme = models.DefaultColorScheme()
	}
	return m, nil
}

func buildLabelConfig(m models.Model, ctx ModelContext) (models.Model, error) {
	if l := ctx.Request.Label; l != nil {
		m.LabelConfig = *l
	} else {
		m.LabelConfig = models.DefaultLabelConfig()
	}
	return m, nil
}
