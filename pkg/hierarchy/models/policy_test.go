package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpacityPolicies(t *testing.T) {
	byLeaf := OpacityByLeaf(0.4, 0.8)
	assert.Equal(t, 0.4, byLeaf.Eval(NodeInfo{IsLeaf: true, Depth: 2}))
	assert.Equal(t, 0.8, byLeaf.Eval(NodeInfo{IsLeaf: false, Depth: 1}))

	byDepth := OpacityByDepth(1, 1, 0.5)
	assert.Equal(t, 1.0, byDepth.Eval(NodeInfo{Depth: 1}))
	assert.Equal(t, 0.5, byDepth.Eval(NodeInfo{Depth: 2}))
}

func TestOpacityPolicyJSON(t *testing.T) {
	out, err := json.Marshal(OpacityByLeaf(0.75, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"byLeaf","leaf":0.75,"nonLeaf":0}`, string(out))

	out, err = json.Marshal(OpacityByDepth(1, 0.9, 0.1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"byDepth","depth":1,"value":0.9,"else":0.1}`, string(out))

	_, err = json.Marshal(OpacityPolicy{Kind: "bogus"})
	assert.Error(t, err)

	var back OpacityPolicy
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *OpacityByDepth(1, 0.9, 0.1), back)
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"bogus"}`), &back))
}

func TestValueKindText(t *testing.T) {
	out, err := json.Marshal([]ValueKind{KindNumber, KindText})
	require.NoError(t, err)
	assert.JSONEq(t, `["number","text"]`, string(out))

	var back []ValueKind
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []ValueKind{KindNumber, KindText}, back)
	assert.Error(t, json.Unmarshal([]byte(`["date"]`), &back))
}

func TestVisibilityPolicy(t *testing.T) {
	p := VisibleAtDepth(1)
	assert.True(t, p.Eval(NodeInfo{Depth: 1}))
	assert.False(t, p.Eval(NodeInfo{Depth: 2}))
}

func TestTitleAndTextPolicies(t *testing.T) {
	n := NodeInfo{Name: "Furniture", Value: 920, Path: []string{"A", "1", "Furniture"}}

	assert.Equal(t, "A / 1 / Furniture", AncestorPathTitle(" / ").Eval(n))
	assert.Equal(t, "Furniture", TitlePolicy{}.Eval(n))
	assert.Equal(t, []string{"Furniture", "920"}, NameAndValueText().Eval(n))
	assert.Equal(t, 12.5, InsetFromLeft(4).Eval(8.5))
}

func TestTreeNodeJSON(t *testing.T) {
	n := Branch("root", Leaf("x", 0), Branch("y", Leaf("z", 2)))
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"root","children":[{"name":"x","value":0},{"name":"y","children":[{"name":"z","value":2}]}]}`,
		string(out))
	assert.Equal(t, float64(2), n.Sum())
}
