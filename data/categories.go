package data

import (
	"sort"
	"time"

	"github.com/emzola/sdmagic/internal/validator"
)

// RootID is the parent ID of top-level categories.
const RootID int64 = 0

// DefaultCategoryName is the name of the category seeded by the first migration.
const DefaultCategoryName = "Uncategorized"

// Category defines a node of the prompt category tree.
type Category struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	ParentID  int64       `json:"parentId" yaml:"parentId"`
	IsDefault bool        `json:"isDefault" yaml:"isDefault"`
	Children  []*Category `json:"children"`
	CreatedAt time.Time   `json:"-" yaml:"-"`
	UpdatedAt time.Time   `json:"-" yaml:"-"`
}

func ValidateCategory(v *validator.Validator, category *Category) {
	v.Check(validator.NotBlank(category.Name), "name", "must be provided")
	v.Check(validator.MaxChars(category.Name, 100), "name", "must not be more than 100 characters long")
	v.Check(category.ParentID >= RootID, "parentId", "must not be negative")
}

// IsRoot reports whether the category sits at the top of the tree.
func (c *Category) IsRoot() bool {
	return c.ParentID == RootID
}

// Walk visits c and its subtree depth-first, parents before children.
// Returning false from fn skips the node's children.
func (c *Category) Walk(fn func(*Category) bool) {
	if !fn(c) {
		return
	}
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// BuildCategoryTree links a flat list of categories into a forest. The input is
// left untouched; the returned nodes are copies. Roots and children are ordered
// by ID, and a category whose parent is not in the list becomes a root. When
// parent links form a loop, the loop is broken at the first repeated node,
// which becomes a root, so every category appears exactly once.
func BuildCategoryTree(flat []*Category) []*Category {
	nodes := make(map[int64]*Category, len(flat))
	ordered := make([]*Category, 0, len(flat))
	for _, c := range flat {
		node := *c
		node.Children = []*Category{}
		nodes[node.ID] = &node
		ordered = append(ordered, &node)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	roots := []*Category{}
	for _, node := range ordered {
		parent, ok := nodes[node.ParentID]
		if node.IsRoot() || !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	attached := make(map[int64]bool, len(ordered))
	mark := func(root *Category) {
		root.Walk(func(c *Category) bool {
			attached[c.ID] = true
			return true
		})
	}
	for _, root := range roots {
		mark(root)
	}
	for _, node := range ordered {
		if attached[node.ID] {
			continue
		}
		loop := loopEntry(nodes, node)
		parent := nodes[loop.ParentID]
		parent.Children = removeChild(parent.Children, loop.ID)
		roots = append(roots, loop)
		mark(loop)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })
	return roots
}

// loopEntry follows parent links from node and returns the first node seen twice.
func loopEntry(nodes map[int64]*Category, node *Category) *Category {
	seen := map[int64]bool{}
	for !seen[node.ID] {
		seen[node.ID] = true
		node = nodes[node.ParentID]
	}
	return node
}

func removeChild(children []*Category, id int64) []*Category {
	kept := children[:0]
	for _, c := range children {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kept
}

// FindCategory returns the node with the given ID from a forest.
func FindCategory(forest []*Category, id int64) (*Category, bool) {
	var found *Category
	for _, root := range forest {
		root.Walk(func(c *Category) bool {
			if found != nil {
				return false
			}
			if c.ID == id {
				found = c
				return false
			}
			return true
		})
		if found != nil {
			return found, true
		}
	}
	return nil, false
}

// Descendants returns id followed by the IDs of every category below it in a
// flat list. Unknown IDs yield a slice holding only id.
func Descendants(flat []*Category, id int64) []int64 {
	children := make(map[int64][]int64, len(flat))
	for _, c := range flat {
		if c.IsRoot() || c.ParentID == c.ID {
			continue
		}
		children[c.ParentID] = append(children[c.ParentID], c.ID)
	}
	ids := []int64{id}
	seen := map[int64]bool{id: true}
	for i := 0; i < len(ids); i++ {
		for _, child := range children[ids[i]] {
			if seen[child] {
				continue
			}
			seen[child] = true
			ids = append(ids, child)
		}
	}
	return ids
}
