package hierarchy

import (
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/tree"
)

// Sunburst fill opacities.
const (
	sunburstLeafOpacity    = 0.4
	sunburstNonLeafOpacity = 0.8
)

// Sunburst assembles radial partition specs.
type Sunburst struct{}

// ChartType implements Assembler.
func (Sunburst) ChartType() models.ChartType { return models.ChartSunburst }

// Assemble strips the root. With leaf nodes hidden the innermost groups are
// collapsed into summed leaves and no drill or opacity rules are emitted.
func (Sunburst) Assemble(s models.Spec, req *models.Request, _ *models.Model) (models.Spec, error) {
	s, nodes, err := preamble(s, models.ChartSunburst)
	if err != nil {
		return s, err
	}

	if !req.ShouldShowLeafNodes() {
		return withValues(s, tree.CollapseLeaves(nodes)), nil
	}

	s = withValues(s, nodes)
	s = withDrill(s, req, true)

	opacity := models.OpacityByLeaf(sunburstLeafOpacity, sunburstNonLeafOpacity)
	visible := true
	s.Sunburst = &models.MarkConfig{
		Visible: &visible,
		Style:   models.MarkStyle{FillOpacity: opacity},
	}

	var label models.LabelConfig
	if s.Label != nil {
		label = *s.Label
	}
	label.Style.FillOpacity = opacity
	s.Label = &label

	return withPathTooltip(s), nil
}
