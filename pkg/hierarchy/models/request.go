package models

// DefaultDrillField is the node attribute drill-down keys on by default.
const DefaultDrillField = "name"

// Request is the user's chart intent plus the raw dataset (a "VSeed").
// A Request is never modified by the build pipeline.
type Request struct {
	// ChartType selects the spec pipeline.
	ChartType ChartType `json:"chartType" yaml:"chartType" validate:"required"`
	// Dataset holds the flat rows to fold into a tree.
	Dataset Dataset `json:"dataset" yaml:"dataset" validate:"required,min=1"`
	// Measure names the numeric field to aggregate. Empty means infer.
	Measure string `json:"measure,omitempty" yaml:"measure"`
	// Dimensions lists grouping fields outermost first. Nil means infer.
	Dimensions []string `json:"dimensions,omitempty" yaml:"dimensions"`
	// ColorScheme overrides the default palette.
	ColorScheme *ColorScheme `json:"colorScheme,omitempty" yaml:"colorScheme"`
	// Label overrides the default label settings.
	Label *LabelConfig `json:"label,omitempty" yaml:"label"`
	// Tooltip overrides the default tooltip settings.
	Tooltip *TooltipConfig `json:"tooltip,omitempty" yaml:"tooltip"`

	// ShowParentNodes controls treemap container nodes.
	// If nil, defaults to true.
	ShowParentNodes *bool `json:"showParentNodes,omitempty" yaml:"showParentNodes"`
	// ShowLeafNodes controls the innermost sunburst ring.
	// If nil, defaults to true.
	ShowLeafNodes *bool `json:"showLeafNodes,omitempty" yaml:"showLeafNodes"`
	// Drill enables drill-down. If nil, each chart type picks its default.
	Drill *bool `json:"drill,omitempty" yaml:"drill"`
	// DrillField names the node attribute drill-down keys on.
	// If empty, defaults to "name".
	DrillField string `json:"drillField,omitempty" yaml:"drillField"`
}

// ShouldShowParentNodes returns whether treemap parent nodes are rendered.
func (r Request) ShouldShowParentNodes() bool {
	if r.ShowParentNodes != nil {
		return *r.ShowParentNodes
	}
	return true
}

// ShouldShowLeafNodes returns whether sunburst leaf nodes are kept.
func (r Request) ShouldShowLeafNodes() bool {
	if r.ShowLeafNodes != nil {
		return *r.ShowLeafNodes
	}
	return true
}

// DrillEnabled returns the explicit drill setting, or def when unset.
func (r Request) DrillEnabled(def bool) bool {
	if r.Drill != nil {
		return *r.Drill
	}
	return def
}

// DrillFieldOrDefault returns the configured drill field or "name".
func (r Request) DrillFieldOrDefault() string {
	if r.DrillField != "" {
		return r.DrillField
	}
	return DefaultDrillField
}
