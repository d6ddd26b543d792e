package models

// DataID is the id of the single data block in a Spec.
const DataID = "data"

// SpecData is a named block of chart data.
type SpecData struct {
	ID     string     `json:"id"`
	Values []TreeNode `json:"values"`
}

// NodeVisibility toggles a class of nodes.
type NodeVisibility struct {
	Visible bool `json:"visible"`
}

// NonLeafLabelStyle styles labels of container nodes.
type NonLeafLabelStyle struct {
	X         InsetPolicy `json:"x"`
	TextAlign string      `json:"textAlign"`
	Text      TextPolicy  `json:"text"`
}

// NonLeafLabel configures labels drawn on treemap container nodes.
type NonLeafLabel struct {
	Visible  bool              `json:"visible"`
	Position string            `json:"position"`
	Padding  float64           `json:"padding"`
	Style    NonLeafLabelStyle `json:"style"`
}

// MarkStyle holds per-node mark styling.
type MarkStyle struct {
	FillOpacity *OpacityPolicy `json:"fillOpacity,omitempty"`
}

// MarkConfig configures the chart's main mark.
type MarkConfig struct {
	Visible *bool     `json:"visible,omitempty"`
	Style   MarkStyle `json:"style"`
}

// Spec is the fully resolved configuration handed to the renderer.
type Spec struct {
	// Type is the chart type.
	Type ChartType `json:"type,omitempty"`
	// CategoryField names the node attribute holding the category.
	CategoryField string `json:"categoryField,omitempty"`
	// ValueField names the node attribute holding the value.
	ValueField string `json:"valueField,omitempty"`
	// Data holds the tree, root-stripped once an assembler has run.
	Data []SpecData `json:"data"`
	// Color is the palette.
	Color *ColorScheme `json:"color,omitempty"`
	// Label configures node labels.
	Label *LabelConfig `json:"label,omitempty"`
	// Tooltip configures tooltips.
	Tooltip *TooltipConfig `json:"tooltip,omitempty"`
	// Drill enables drill-down. Nil when the chart type emits no drill config.
	Drill *bool `json:"drill,omitempty"`
	// DrillField is set only when drill-down is enabled.
	DrillField string `json:"drillField,omitempty"`

	// NonLeaf and NonLeafLabel are treemap-only.
	NonLeaf      *NodeVisibility `json:"nonLeaf,omitempty"`
	NonLeafLabel *NonLeafLabel   `json:"nonLeafLabel,omitempty"`
	// Sunburst configures the sunburst mark.
	Sunburst *MarkConfig `json:"sunburst,omitempty"`
	// CirclePacking configures the circle packing mark.
	CirclePacking *MarkConfig `json:"circlePacking,omitempty"`
}

// Values returns the node list of the data block, or nil.
func (s Spec) Values() []TreeNode {
	if len(s.Data) == 0 {
		return nil
	}
	return s.Data[0].Values
}
