package hierarchy

import "github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"

const (
	circlePackingLeafOpacity    = 0.75
	circlePackingNonLeafOpacity = 0.25
	// circlePackingLabelDepth keeps deeper labels from overlapping.
	circlePackingLabelDepth    = 1
	circlePackingLabelFontSize = 10
)

// CirclePacking assembles nested-circle specs.
type CirclePacking struct{}

// ChartType implements Assembler.
func (CirclePacking) ChartType() models.ChartType { return models.ChartCirclePacking }

// Assemble strips the root, enables drill-down by default, makes leaves
// more opaque than containers and labels only the outermost ring of nodes.
func (CirclePacking) Assemble(s models.Spec, req *models.Request, _ *models.Model) (models.Spec, error) {
	s, nodes, err := preamble(s, models.ChartCirclePacking)
	if err != nil {
		return s, err
	}

	s = withValues(s, nodes)
	s = withDrill(s, req, true)
	s.CirclePacking = &models.MarkConfig{
		Style: models.MarkStyle{
			FillOpacity: models.OpacityByLeaf(circlePackingLeafOpacity, circlePackingNonLeafOpacity),
		},
	}

	fontSize := float64(circlePackingLabelFontSize)
	if s.Label != nil && s.Label.Style.FontSize != 0 {
		fontSize = s.Label.Style.FontSize
	}
	s.Label = &models.LabelConfig{
		Style: models.LabelStyle{
			FontSize: fontSize,
			Visible:  models.VisibleAtDepth(circlePackingLabelDepth),
		},
	}
	return s, nil
}
