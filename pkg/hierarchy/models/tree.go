package models

// RootName is the name of the synthetic node every tree hangs from.
const RootName = "root"

// TreeNode is a node of the aggregated hierarchy. Leaves carry Value;
// internal nodes carry Children.
type TreeNode struct {
	// Name is the group key for this node.
	Name string `json:"name"`
	// Value is the summed measure. Nil for internal nodes.
	Value *float64 `json:"value,omitempty"`
	// Children are the groups one dimension deeper.
	Children []TreeNode `json:"children,omitempty"`
}

// Leaf returns a leaf node.
func Leaf(name string, value float64) TreeNode {
	return TreeNode{Name: name, Value: &value}
}

// Branch returns an internal node.
func Branch(name string, children ...TreeNode) TreeNode {
	return TreeNode{Name: name, Children: children}
}

// IsLeaf reports whether n has no children.
func (n TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Sum returns the leaf value, or the total of all leaves below n.
func (n TreeNode) Sum() float64 {
	if n.IsLeaf() {
		if n.Value == nil {
			return 0
		}
		return *n.Value
	}
	var total float64
	for _, c := range n.Children {
		total += c.Sum()
	}
	return total
}
