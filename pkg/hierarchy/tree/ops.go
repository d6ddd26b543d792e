package tree

import "github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"

// StripRoot returns the children of the synthetic root. It never returns nil.
func StripRoot(root models.TreeNode) []models.TreeNode {
	if root.Children == nil {
		return []models.TreeNode{}
	}
	return root.Children
}

// CollapseLeaves replaces every internal node whose children are all leaves
// with a single leaf carrying their sum. Nodes with a mix of leaf and
// internal children are kept, and only their internal children are
// rewritten. Each call removes at most one level of nesting.
func CollapseLeaves(nodes []models.TreeNode) []models.TreeNode {
	out := make([]models.TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = collapse(n)
	}
	return out
}

func collapse(n models.TreeNode) models.TreeNode {
	if n.IsLeaf() {
		return n
	}
	if allLeaves(n.Children) {
		var total float64
		for _, c := range n.Children {
			total += c.Sum()
		}
		return models.Leaf(n.Name, total)
	}
	return models.Branch(n.Name, CollapseLeaves(n.Children)...)
}

func allLeaves(nodes []models.TreeNode) bool {
	for _, n := range nodes {
		if !n.IsLeaf() || n.Value == nil {
			return false
		}
	}
	return true
}

// Depth returns the number of edges on the longest path from n to a leaf.
func Depth(n models.TreeNode) int {
	d := 0
	for _, c := range n.Children {
		if cd := Depth(c) + 1; cd > d {
			d = cd
		}
	}
	return d
}

// Walk visits nodes depth-first in pre-order. Top-level nodes have depth 1.
// Returning false from fn skips the node's children.
func Walk(nodes []models.TreeNode, fn func(n models.TreeNode, info models.NodeInfo) bool) {
	walk(nodes, nil, 1, fn)
}

func walk(nodes []models.TreeNode, path []string, depth int, fn func(models.TreeNode, models.NodeInfo) bool) {
	for _, n := range nodes {
		p := append(path[:len(path):len(path)], n.Name)
		info := models.NodeInfo{
			Name:   n.Name,
			Value:  n.Sum(),
			Depth:  depth,
			IsLeaf: n.IsLeaf(),
			Path:   p,
		}
		if fn(n, info) {
			walk(n.Children, p, depth+1, fn)
		}
	}
}
