package hierarchy

import (
	"log/slog"
	"slices"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
)

// FieldSelection is the outcome of field inference.
type FieldSelection struct {
	Fields          []models.FieldInfo
	NumericFields   []string
	MeasureField    string
	DimensionFields []string
}

// InferFields decides the measure and dimension fields of a dataset.
//
// Only the first record is inspected. The measure defaults to the last
// numeric field; the dimensions default to every other field in declaration
// order. Explicit choices in measure and dimensions are validated against
// the sampled record, and the order of dimensions is kept as given.
func InferFields(dataset models.Dataset, measure string, dimensions []string) (FieldSelection, error) {
	sample, ok := dataset.Sample()
	if !ok {
		return FieldSelection{}, NewConfigurationError("fields", "dataset", ErrDatasetRequired)
	}

	var sel FieldSelection
	for _, c := range sample {
		sel.Fields = append(sel.Fields, models.FieldInfo{Name: c.Name, Kind: c.Value.Kind})
		if c.Value.IsNumeric() {
			sel.NumericFields = append(sel.NumericFields, c.Name)
		}
	}
	if len(sel.NumericFields) == 0 {
		return FieldSelection{}, NewConfigurationError("fields", "", ErrNoNumericField)
	}

	if measure != "" {
		if !slices.Contains(sel.NumericFields, measure) {
			return FieldSelection{}, NewConfigurationError("fields", measure, ErrMeasureNotNumeric)
		}
		sel.MeasureField = measure
	} else {
		sel.MeasureField = sel.NumericFields[len(sel.NumericFields)-1]
	}

	if dimensions != nil {
		for _, d := range dimensions {
			if !sample.Has(d) {
				return FieldSelection{}, NewConfigurationError("fields", d, ErrDimensionNotFound)
			}
			if d == sel.MeasureField {
				return FieldSelection{}, NewConfigurationError("fields", d, ErrDimensionIsMeasure)
			}
		}
		sel.DimensionFields = slices.Clone(dimensions)
	} else {
		for _, f := range sel.Fields {
			if f.Name != sel.MeasureField {
				sel.DimensionFields = append(sel.DimensionFields, f.Name)
			}
		}
	}

	if len(sel.DimensionFields) == 0 {
		return FieldSelection{}, NewConfigurationError("fields", "", ErrNoDimensions)
	}
	return sel, nil
}

// identifyFields is the model stage wrapping InferFields.
func identifyFields(m models.Model, ctx ModelContext) (models.Model, error) {
	sel, err := InferFields(m.Dataset, ctx.Request.Measure, ctx.Request.Dimensions)
	if err != nil {
		return m, err
	}

	ctx.logger().Debug("identified fields",
		slog.Any("fields", sel.Fields),
		slog.Any("numeric_fields", sel.NumericFields),
		slog.String("measure", sel.MeasureField),
		slog.Any("dimensions", sel.DimensionFields),
	)

	used := append([]string{sel.MeasureField}, sel.DimensionFields...)
	if n := m.Dataset.MissingFields(used); n > 0 {
		ctx.logger().Warn("records missing inferred fields",
			slog.Int("records", n),
			slog.Int("total", len(m.Dataset)),
		)
	}

	m.Fields = sel.Fields
	m.NumericFields = sel.NumericFields
	m.MeasureField = sel.MeasureField
	m.DimensionFields = sel.DimensionFields
	return m, nil
}
