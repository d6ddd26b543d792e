package models

// ChartType identifies a hierarchical chart kind.
type ChartType string

const (
	// ChartTreemap renders nested rectangles.
	ChartTreemap ChartType = "treemap"
	// ChartSunburst renders a radial partition.
	ChartSunburst ChartType = "sunburst"
	// ChartCirclePacking renders nested circles.
	ChartCirclePacking ChartType = "circlePacking"
)

// ColorScheme describes the palette handed to the renderer.
type ColorScheme struct {
	// Type is the scale type (e.g., "ordinal").
	Type string `json:"type" yaml:"type"`
	// Range lists the palette colors.
	Range []string `json:"range" yaml:"range"`
}

// LabelStyle holds label text styling and per-node label rules.
type LabelStyle struct {
	// FontSize is the label font size in pixels.
	FontSize float64 `json:"fontSize,omitempty" yaml:"fontSize"`
	// FillOpacity, when set, varies label opacity per node.
	FillOpacity *OpacityPolicy `json:"fillOpacity,omitempty" yaml:"-"`
	// Visible, when set, decides label visibility per node.
	Visible *VisibilityPolicy `json:"visible,omitempty" yaml:"-"`
}

// LabelConfig configures node labels.
type LabelConfig struct {
	// Visible toggles labels. Nil leaves the renderer default.
	Visible *bool `json:"visible,omitempty" yaml:"visible"`
	// Style holds text styling.
	Style LabelStyle `json:"style" yaml:"style"`
}

// TooltipBorder styles the tooltip panel border.
type TooltipBorder struct {
	Radius float64 `json:"radius" yaml:"radius"`
	Width  float64 `json:"width" yaml:"width"`
	Color  string  `json:"color" yaml:"color"`
}

// TooltipPanel styles the tooltip panel.
type TooltipPanel struct {
	Padding         float64       `json:"padding" yaml:"padding"`
	Border          TooltipBorder `json:"border" yaml:"border"`
	BackgroundColor string        `json:"backgroundColor" yaml:"backgroundColor"`
}

// TooltipStyle groups tooltip styling.
type TooltipStyle struct {
	Panel TooltipPanel `json:"panel" yaml:"panel"`
}

// TooltipTitle configures the tooltip title text.
type TooltipTitle struct {
	// Value renders the title for a hovered node.
	Value TitlePolicy `json:"value"`
}

// TooltipMark configures the tooltip shown for a hovered mark.
type TooltipMark struct {
	Title TooltipTitle `json:"title"`
}

// TooltipConfig configures tooltips.
type TooltipConfig struct {
	// Visible toggles tooltips.
	Visible bool `json:"visible" yaml:"visible"`
	// Style holds panel styling.
	Style *TooltipStyle `json:"style,omitempty" yaml:"style"`
	// Mark is set by assemblers that render a custom title.
	Mark *TooltipMark `json:"mark,omitempty" yaml:"-"`
}

// DefaultColorScheme returns the palette used when a request sets none.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Type: "ordinal",
		Range: []string{
			"#8D72F6", "#5766EC", "#66A3FE", "#51D5E6",
			"#4EC0B3", "#F9DF90", "#F9AD71", "#ED8888",
			"#E9A0C3", "#D77DD3",
		},
	}
}

// DefaultLabelConfig returns the label settings used when a request sets none.
func DefaultLabelConfig() LabelConfig {
	visible := true
	return LabelConfig{
		Visible: &visible,
		Style:   LabelStyle{FontSize: 12},
	}
}

// DefaultTooltipConfig returns the tooltip settings used when a request sets none.
func DefaultTooltipConfig() TooltipConfig {
	return TooltipConfig{
		Visible: true,
		Style: &TooltipStyle{
			Panel: TooltipPanel{
				Padding: 7,
				Border: TooltipBorder{
					Radius: 12,
					Width:  1,
					Color:  "#e3e5e8",
				},
				BackgroundColor: "#fff",
			},
		},
	}
}
