package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/tree"
)

func twoLevelRequest(ct models.ChartType) models.Request {
	return models.Request{
		ChartType: ct,
		Dataset: models.Dataset{
			models.MustRecord("a", "p", "b", "q", "v", 3),
			models.MustRecord("a", "p", "b", "r", "v", 4),
			models.MustRecord("a", "s", "b", "q", "v", 2),
		},
	}
}

func twoLevelTree() []models.TreeNode {
	return []models.TreeNode{
		models.Branch("p", models.Leaf("q", 3), models.Leaf("r", 4)),
		models.Branch("s", models.Leaf("q", 2)),
	}
}

func mustBuild(t *testing.T, req models.Request) *models.Spec {
	t.Helper()
	spec, err := Build(req, DefaultOptions())
	require.NoError(t, err)
	return spec
}

func TestTreemapShowParentNodes(t *testing.T) {
	spec := mustBuild(t, twoLevelRequest(models.ChartTreemap))

	assert.Equal(t, twoLevelTree(), spec.Values())
	require.NotNil(t, spec.NonLeafLabel)
	assert.Equal(t, "top", spec.NonLeafLabel.Position)
	assert.Equal(t, float64(30), spec.NonLeafLabel.Padding)
	assert.Equal(t, "left", spec.NonLeafLabel.Style.TextAlign)
	assert.Equal(t, float64(14), spec.NonLeafLabel.Style.X.Eval(10))
	assert.Equal(t, []string{"p", "7"},
		spec.NonLeafLabel.Style.Text.Eval(models.NodeInfo{Name: "p", Value: 7}))

	require.NotNil(t, spec.Tooltip)
	require.NotNil(t, spec.Tooltip.Mark)
	title := spec.Tooltip.Mark.Title.Value
	assert.Equal(t, "p / q", title.Eval(models.NodeInfo{Name: "q", Path: []string{"p", "q"}}))
	assert.Equal(t, models.DefaultTooltipConfig().Style, spec.Tooltip.Style)
}

func TestTreemapHideParentNodes(t *testing.T) {
	req := twoLevelRequest(models.ChartTreemap)
	req.ShowParentNodes = boolPtr(false)
	spec := mustBuild(t, req)

	assert.Nil(t, spec.NonLeaf)
	assert.Nil(t, spec.NonLeafLabel)
	require.NotNil(t, spec.Drill)
	assert.False(t, *spec.Drill)
	assert.Empty(t, spec.DrillField)
	assert.Nil(t, spec.Tooltip.Mark)
}

func TestTreemapDrillOverride(t *testing.T) {
	req := twoLevelRequest(models.ChartTreemap)
	req.ShowParentNodes = boolPtr(false)
	req.Drill = boolPtr(true)
	req.DrillField = "id"
	spec := mustBuild(t, req)

	assert.True(t, *spec.Drill)
	assert.Equal(t, "id", spec.DrillField)

	req = twoLevelRequest(models.ChartTreemap)
	req.Drill = boolPtr(false)
	spec = mustBuild(t, req)
	assert.False(t, *spec.Drill)
	assert.NotNil(t, spec.NonLeaf)
}

func TestSunburstShowLeafNodes(t *testing.T) {
	spec := mustBuild(t, twoLevelRequest(models.ChartSunburst))

	assert.Equal(t, models.ChartSunburst, spec.Type)
	assert.Equal(t, twoLevelTree(), spec.Values())
	require.NotNil(t, spec.Drill)
	assert.True(t, *spec.Drill)
	assert.Equal(t, "name", spec.DrillField)

	require.NotNil(t, spec.Sunburst)
	opacity := spec.Sunburst.Style.FillOpacity
	require.NotNil(t, opacity)
	assert.Equal(t, 0.4, opacity.Eval(models.NodeInfo{IsLeaf: true}))
	assert.Equal(t, 0.8, opacity.Eval(models.NodeInfo{IsLeaf: false}))

	require.NotNil(t, spec.Label)
	assert.Equal(t, opacity, spec.Label.Style.FillOpacity)
	assert.Equal(t, float64(12), spec.Label.Style.FontSize)
	assert.Equal(t, "p / r", spec.Tooltip.Mark.Title.Value.Eval(models.NodeInfo{Path: []string{"p", "r"}}))
}

func TestSunburstHideLeafNodes(t *testing.T) {
	req := twoLevelRequest(models.ChartSunburst)
	req.ShowLeafNodes = boolPtr(false)
	req.Drill = boolPtr(true)
	spec := mustBuild(t, req)

	assert.Equal(t, []models.TreeNode{models.Leaf("p", 7), models.Leaf("s", 2)}, spec.Values())
	assert.Equal(t, 1, tree.Depth(models.Branch("root", spec.Values()...)))
	assert.Nil(t, spec.Drill)
	assert.Empty(t, spec.DrillField)
	assert.Nil(t, spec.Sunburst)
	assert.Nil(t, spec.Label.Style.FillOpacity)
	assert.Nil(t, spec.Tooltip.Mark)
}

func TestCirclePacking(t *testing.T) {
	spec := mustBuild(t, twoLevelRequest(models.ChartCirclePacking))

	assert.Equal(t, models.ChartCirclePacking, spec.Type)
	assert.Equal(t, twoLevelTree(), spec.Values())
	require.NotNil(t, spec.Drill)
	assert.True(t, *spec.Drill)

	require.NotNil(t, spec.CirclePacking)
	opacity := spec.CirclePacking.Style.FillOpacity
	assert.Equal(t, 0.75, opacity.Eval(models.NodeInfo{IsLeaf: true}))
	assert.Equal(t, 0.25, opacity.Eval(models.NodeInfo{IsLeaf: false}))

	require.NotNil(t, spec.Label)
	assert.Nil(t, spec.Label.Visible)
	assert.Equal(t, float64(12), spec.Label.Style.FontSize)
	visible := spec.Label.Style.Visible
	require.NotNil(t, visible)

	var shown []string
	tree.Walk(spec.Values(), func(n models.TreeNode, info models.NodeInfo) bool {
		if visible.Eval(info) {
			shown = append(shown, info.Name)
		}
		return true
	})
	assert.Equal(t, []string{"p", "s"}, shown)
}

func TestCirclePackingLabelFontFallback(t *testing.T) {
	req := twoLevelRequest(models.ChartCirclePacking)
	req.Label = &models.LabelConfig{}
	spec := mustBuild(t, req)
	assert.Equal(t, float64(10), spec.Label.Style.FontSize)

	req.Label = &models.LabelConfig{Style: models.LabelStyle{FontSize: 16}}
	spec = mustBuild(t, req)
	assert.Equal(t, float64(16), spec.Label.Style.FontSize)
}

func TestCirclePackingDrillDisabled(t *testing.T) {
	req := twoLevelRequest(models.ChartCirclePacking)
	req.Drill = boolPtr(false)
	req.DrillField = "id"
	spec := mustBuild(t, req)

	assert.False(t, *spec.Drill)
	assert.Empty(t, spec.DrillField)
}

func TestUserDefaultsReplaceBuiltins(t *testing.T) {
	req := twoLevelRequest(models.ChartTreemap)
	req.ColorScheme = &models.ColorScheme{Type: "ordinal", Range: []string{"#000"}}
	req.Tooltip = &models.TooltipConfig{Visible: false}
	spec := mustBuild(t, req)

	assert.Equal(t, []string{"#000"}, spec.Color.Range)
	assert.False(t, spec.Tooltip.Visible)
	assert.Nil(t, spec.Tooltip.Style)
	assert.NotNil(t, spec.Tooltip.Mark)
}

func TestAssemblersRequireTree(t *testing.T) {
	req := twoLevelRequest(models.ChartTreemap)
	for _, a := range []Assembler{Treemap{}, Sunburst{}, CirclePacking{}} {
		_, err := a.Assemble(models.Spec{}, &req, &models.Model{})
		assert.ErrorIs(t, err, errTreeMissing, "%s", a.ChartType())
	}
}

func TestAssemblersDoNotMutateSharedLabel(t *testing.T) {
	label := models.DefaultLabelConfig()
	in := models.Spec{
		Data:  []models.SpecData{{ID: models.DataID, Values: []models.TreeNode{models.Branch("root", twoLevelTree()...)}}},
		Label: &label,
	}
	req := twoLevelRequest(models.ChartSunburst)

	_, err := Sunburst{}.Assemble(in, &req, &models.Model{})
	require.NoError(t, err)
	assert.Nil(t, label.Style.FillOpacity)
}
