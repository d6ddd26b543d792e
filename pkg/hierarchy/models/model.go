package models

// FieldInfo describes one field observed in the sampled record.
type FieldInfo struct {
	Name string    `json:"name"`
	Kind ValueKind `json:"kind"`
}

// FieldDescriptor is a normalized measure or dimension reference.
type FieldDescriptor struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
}

// Model is the intermediate result of the model-building pipeline.
type Model struct {
	// ChartType is copied from the request.
	ChartType ChartType `json:"chartType"`
	// Dataset is the request's dataset.
	Dataset Dataset `json:"-"`
	// Fields lists every field of the sampled record in declaration order.
	Fields []FieldInfo `json:"fields"`
	// NumericFields lists the sampled fields holding numbers.
	NumericFields []string `json:"numericFields"`
	// MeasureField is the single aggregated field.
	MeasureField string `json:"measureField"`
	// DimensionFields fixes the nesting order, outermost first.
	DimensionFields []string `json:"dimensionFields"`
	// Measures holds the normalized measure descriptor.
	Measures []FieldDescriptor `json:"measures"`
	// Dimensions holds the normalized dimension descriptors, in nesting order.
	Dimensions []FieldDescriptor `json:"dimensions"`
	// ColorScheme is the resolved palette.
	ColorScheme ColorScheme `json:"colorScheme"`
	// LabelConfig is the resolved label settings.
	LabelConfig LabelConfig `json:"labelConfig"`
}

// DimensionIDs returns the dimension descriptor ids in nesting order.
func (m Model) DimensionIDs() []string {
	ids := make([]string, len(m.Dimensions))
	for i, d := range m.Dimensions {
		ids[i] = d.ID
	}
	return ids
}
