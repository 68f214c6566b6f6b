package data

import (
	"testing"

	"github.com/emzola/sdmagic/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestFilters(t *testing.T) {
	f := Filters{Page: 3, PageSize: 20, Sort: "-updated_at", SortSafeList: []string{"name", "-updated_at"}}

	v := validator.New()
	ValidateFilters(v, f)
	assert.True(t, v.Valid())
	assert.Equal(t, "updated_at", f.SortColumn())
	assert.Equal(t, "DESC", f.SortDirection())
	assert.Equal(t, 20, f.Limit())
	assert.Equal(t, 40, f.Offset())
}

func TestFiltersRejectUnsafeSort(t *testing.T) {
	f := Filters{Page: 1, PageSize: 20, Sort: "name; DROP TABLE prompts", SortSafeList: []string{"name"}}

	v := validator.New()
	ValidateFilters(v, f)
	assert.Equal(t, "invalid sort value", v.Errors["sort"])
	assert.Panics(t, func() { f.SortColumn() })
}

func TestCalculateMetadata(t *testing.T) {
	assert.Equal(t, Metadata{}, CalculateMetadata(0, 1, 20))
	assert.Equal(t, Metadata{CurrentPage: 2, PageSize: 20, FirstPage: 1, LastPage: 3, TotalRecords: 41}, CalculateMetadata(41, 2, 20))
}
