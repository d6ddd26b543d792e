package hierarchy

import "github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"

// Treemap non-leaf label layout.
const (
	nonLeafLabelPadding = 30
	nonLeafLabelInset   = 4
)

// Treemap assembles nested-rectangle specs.
type Treemap struct{}

// ChartType implements Assembler.
func (Treemap) ChartType() models.ChartType { return models.ChartTreemap }

// Assemble strips the root and, unless parent nodes are hidden, renders
// container nodes with top-left labels and path tooltips. Drill-down
// follows parent visibility unless set explicitly.
func (Treemap) Assemble(s models.Spec, req *models.Request, _ *models.Model) (models.Spec, error) {
	s, nodes, err := preamble(s, models.ChartTreemap)
	if err != nil {
		return s, err
	}
	showParents := req.ShouldShowParentNodes()

	s = withValues(s, nodes)
	s = withDrill(s, req, showParents)

	if !showParents {
		return s, nil
	}
	s = withPathTooltip(s)
	s.NonLeaf = &models.NodeVisibility{Visible: true}
	s.NonLeafLabel = &models.NonLeafLabel{
		Visible:  true,
		Position: "top",
		Padding:  nonLeafLabelPadding,
		Style: models.NonLeafLabelStyle{
			X:         models.InsetFromLeft(nonLeafLabelInset),
			TextAlign: "left",
			Text:      models.NameAndValueText(),
		},
	}
	return s, nil
}
