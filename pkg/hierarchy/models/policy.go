package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PolicyKind names a render-time rule the renderer evaluates per node.
type PolicyKind string

const (
	PolicyByLeaf       PolicyKind = "byLeaf"
	PolicyByDepth      PolicyKind = "byDepth"
	PolicyDepthEquals  PolicyKind = "depthEquals"
	PolicyAncestorPath PolicyKind = "ancestorPath"
	PolicyInset        PolicyKind = "inset"
	PolicyNameAndValue PolicyKind = "nameAndValue"
)

// NodeInfo is what a renderer knows about a node when evaluating a policy.
type NodeInfo struct {
	// Name is the node name.
	Name string
	// Value is the node's (aggregated) value.
	Value float64
	// Depth is 1 for children of the stripped root.
	Depth int
	// IsLeaf reports whether the node has no children.
	IsLeaf bool
	// Path lists node names from the outermost ancestor to the node itself.
	Path []string
}

// OpacityPolicy picks a fill opacity per node.
type OpacityPolicy struct {
	Kind PolicyKind
	// Leaf and NonLeaf apply to PolicyByLeaf.
	Leaf    float64
	NonLeaf float64
	// Depth, Value and Else apply to PolicyByDepth.
	Depth int
	Value float64
	Else  float64
}

// OpacityByLeaf returns a policy that distinguishes leaves from non-leaves.
func OpacityByLeaf(leaf, nonLeaf float64) *OpacityPolicy {
	return &OpacityPolicy{Kind: PolicyByLeaf, Leaf: leaf, NonLeaf: nonLeaf}
}

// OpacityByDepth returns a policy that singles out one depth.
func OpacityByDepth(depth int, value, elseValue float64) *OpacityPolicy {
	return &OpacityPolicy{Kind: PolicyByDepth, Depth: depth, Value: value, Else: elseValue}
}

// Eval returns the opacity for n.
func (p OpacityPolicy) Eval(n NodeInfo) float64 {
	switch p.Kind {
	case PolicyByLeaf:
		if n.IsLeaf {
			return p.Leaf
		}
		return p.NonLeaf
	case PolicyByDepth:
		if n.Depth == p.Depth {
			return p.Value
		}
		return p.Else
	}
	return 1
}

// MarshalJSON emits only the parameters of p's kind.
func (p OpacityPolicy) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PolicyByLeaf:
		return json.Marshal(struct {
			Kind    PolicyKind `json:"kind"`
			Leaf    float64    `json:"leaf"`
			NonLeaf float64    `json:"nonLeaf"`
		}{p.Kind, p.Leaf, p.NonLeaf})
	case PolicyByDepth:
		return json.Marshal(struct {
			Kind  PolicyKind `json:"kind"`
			Depth int        `json:"depth"`
			Value float64    `json:"value"`
			Else  float64    `json:"else"`
		}{p.Kind, p.Depth, p.Value, p.Else})
	}
	return nil, fmt.Errorf("unknown opacity policy %q", p.Kind)
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (p *OpacityPolicy) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind    PolicyKind `json:"kind"`
		Leaf    float64    `json:"leaf"`
		NonLeaf float64    `json:"nonLeaf"`
		Depth   int        `json:"depth"`
		Value   float64    `json:"value"`
		Else    float64    `json:"else"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind != PolicyByLeaf && raw.Kind != PolicyByDepth {
		return fmt.Errorf("unknown opacity policy %q", raw.Kind)
	}
	*p = OpacityPolicy(raw)
	return nil
}

// VisibilityPolicy decides whether a node's label is shown.
type VisibilityPolicy struct {
	Kind  PolicyKind `json:"kind"`
	Depth int        `json:"depth"`
}

// VisibleAtDepth shows labels only for nodes at exactly depth.
func VisibleAtDepth(depth int) *VisibilityPolicy {
	return &VisibilityPolicy{Kind: PolicyDepthEquals, Depth: depth}
}

// Eval reports whether n's label is visible.
func (p VisibilityPolicy) Eval(n NodeInfo) bool {
	return p.Kind == PolicyDepthEquals && n.Depth == p.Depth
}

// TitlePolicy renders tooltip titles.
type TitlePolicy struct {
	Kind      PolicyKind `json:"kind"`
	Separator string     `json:"separator"`
}

// AncestorPathTitle joins the names on a node's path with sep.
func AncestorPathTitle(sep string) TitlePolicy {
	return TitlePolicy{Kind: PolicyAncestorPath, Separator: sep}
}

// Eval returns the title for n.
func (p TitlePolicy) Eval(n NodeInfo) string {
	if p.Kind != PolicyAncestorPath {
		return n.Name
	}
	return strings.Join(n.Path, p.Separator)
}

// InsetPolicy offsets a label coordinate from an edge of its label rect.
type InsetPolicy struct {
	Kind   PolicyKind `json:"kind"`
	Anchor string     `json:"anchor"`
	Offset float64    `json:"offset"`
}

// InsetFromLeft anchors on the left edge of the label rect.
func InsetFromLeft(offset float64) InsetPolicy {
	return InsetPolicy{Kind: PolicyInset, Anchor: "labelRect.x0", Offset: offset}
}

// Eval returns the coordinate for a label rect edge.
func (p InsetPolicy) Eval(edge float64) float64 {
	return edge + p.Offset
}

// TextPolicy renders label text lines.
type TextPolicy struct {
	Kind PolicyKind `json:"kind"`
}

// NameAndValueText renders the node name followed by its value.
func NameAndValueText() TextPolicy {
	return TextPolicy{Kind: PolicyNameAndValue}
}

// Eval returns the text lines for n.
func (p TextPolicy) Eval(n NodeInfo) []string {
	if p.Kind == PolicyNameAndValue {
		return []string{n.Name, FormatNumber(n.Value)}
	}
	return []string{n.Name}
}
