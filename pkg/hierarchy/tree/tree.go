// Package tree folds flat records into an aggregated hierarchy.
package tree

import (
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"golang.org/x/sync/errgroup"
)

// MissingKey names the group of records that lack a dimension field.
const MissingKey = "(missing)"

type group struct {
	key  string
	rows models.Dataset
}

// Build folds rows into a tree under a synthetic root. Each entry of dims
// adds one level of nesting, outermost first; the leaves hold the sum of
// measure over their rows. Siblings appear in the order their keys are
// first seen.
func Build(rows models.Dataset, dims []string, measure string) models.TreeNode {
	return models.Branch(models.RootName, buildLevel(rows, dims, measure)...)
}

// BuildConcurrent is Build with the first-level groups folded in parallel,
// at most limit at a time. The result is identical to Build.
func BuildConcurrent(rows models.Dataset, dims []string, measure string, limit int) models.TreeNode {
	if limit <= 1 || len(dims) == 0 {
		return Build(rows, dims, measure)
	}

	groups := groupBy(rows, dims[0])
	children := make([]models.TreeNode, len(groups))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, grp := range groups {
		g.Go(func() error {
			children[i] = buildGroup(grp, dims, measure)
			return nil
		})
	}
	// Group functions never fail.
	g.Wait()

	return models.Branch(models.RootName, children...)
}

func buildLevel(rows models.Dataset, dims []string, measure string) []models.TreeNode {
	if len(dims) == 0 {
		return nil
	}
	groups := groupBy(rows, dims[0])
	nodes := make([]models.TreeNode, len(groups))
	for i, grp := range groups {
		nodes[i] = buildGroup(grp, dims, measure)
	}
	return nodes
}

func buildGroup(grp group, dims []string, measure string) models.TreeNode {
	if len(dims) == 1 {
		return models.Leaf(grp.key, sum(grp.rows, measure))
	}
	return models.Branch(grp.key, buildLevel(grp.rows, dims[1:], measure)...)
}

// groupBy partitions rows by the string form of field, keeping first-seen order.
func groupBy(rows models.Dataset, field string) []group {
	index := make(map[string]int)
	var groups []group
	for _, row := range rows {
		key := MissingKey
		if v, ok := row.Get(field); ok {
			key = v.String()
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group{key: key})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}

// sum adds up measure across rows. Missing or textual values count as zero.
func sum(rows models.Dataset, measure string) float64 {
	var total float64
	for _, row := range rows {
		if v, ok := row.Get(measure); ok {
			total += v.Float()
		}
	}
	return total
}
