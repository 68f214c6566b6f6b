package data

import (
	"encoding/json"
	"testing"

	"github.com/emzola/sdmagic/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCategories() []*Category {
	return []*Category{
		{ID: 4, Name: "Lighting", ParentID: 2},
		{ID: 1, Name: DefaultCategoryName, IsDefault: true},
		{ID: 2, Name: "Style"},
		{ID: 3, Name: "Subject"},
		{ID: 5, Name: "Studio", ParentID: 4},
		{ID: 6, Name: "Portrait", ParentID: 3},
	}
}

func TestBuildCategoryTree(t *testing.T) {
	flat := flatCategories()
	roots := BuildCategoryTree(flat)

	require.Len(t, roots, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{roots[0].ID, roots[1].ID, roots[2].ID})
	assert.True(t, roots[0].IsDefault)
	assert.Empty(t, roots[0].Children)

	style := roots[1]
	require.Len(t, style.Children, 1)
	lighting := style.Children[0]
	assert.Equal(t, int64(4), lighting.ID)
	assert.Equal(t, style.ID, lighting.ParentID)
	require.Len(t, lighting.Children, 1)
	assert.Equal(t, "Studio", lighting.Children[0].Name)

	for _, c := range flat {
		assert.Nil(t, c.Children, "input nodes are not modified")
	}
}

func TestBuildCategoryTreeOrphansBecomeRoots(t *testing.T) {
	roots := BuildCategoryTree([]*Category{
		{ID: 7, Name: "Orphan", ParentID: 99},
		{ID: 8, Name: "Self", ParentID: 8},
	})
	require.Len(t, roots, 2)
	assert.Equal(t, int64(7), roots[0].ID)
	assert.Equal(t, int64(8), roots[1].ID)
}

func TestBuildCategoryTreeKeepsLoopMembers(t *testing.T) {
	roots := BuildCategoryTree([]*Category{
		{ID: 1, Name: DefaultCategoryName, IsDefault: true},
		{ID: 2, Name: "A", ParentID: 3},
		{ID: 3, Name: "B", ParentID: 2},
		{ID: 4, Name: "Below B", ParentID: 3},
	})
	require.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)

	loop := roots[1]
	assert.Equal(t, int64(2), loop.ID)
	require.Len(t, loop.Children, 1)
	assert.Equal(t, int64(3), loop.Children[0].ID)
	require.Len(t, loop.Children[0].Children, 1)
	assert.Equal(t, int64(4), loop.Children[0].Children[0].ID)
}

func TestCategoryJSONShape(t *testing.T) {
	roots := BuildCategoryTree([]*Category{{ID: 1, Name: "Style"}})
	js, err := json.Marshal(roots[0])
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(js, &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "name", "parentId", "isDefault", "children"}, keys)
	assert.Equal(t, []any{}, fields["children"])
}

func TestFindCategory(t *testing.T) {
	forest := BuildCategoryTree(flatCategories())

	c, ok := FindCategory(forest, 5)
	require.True(t, ok)
	assert.Equal(t, "Studio", c.Name)

	_, ok = FindCategory(forest, 42)
	assert.False(t, ok)
}

func TestDescendants(t *testing.T) {
	flat := flatCategories()
	assert.Equal(t, []int64{2, 4, 5}, Descendants(flat, 2))
	assert.Equal(t, []int64{3, 6}, Descendants(flat, 3))
	assert.Equal(t, []int64{42}, Descendants(flat, 42))
}

func TestWalkSkipsChildren(t *testing.T) {
	forest := BuildCategoryTree(flatCategories())
	var visited []int64
	forest[1].Walk(func(c *Category) bool {
		visited = append(visited, c.ID)
		return c.ID != 4
	})
	assert.Equal(t, []int64{2, 4}, visited)
}

func TestValidateCategory(t *testing.T) {
	v := validator.New()
	ValidateCategory(v, &Category{Name: " ", ParentID: -1})
	assert.Equal(t, "must be provided", v.Errors["name"])
	assert.Equal(t, "must not be negative", v.Errors["parentId"])
}
