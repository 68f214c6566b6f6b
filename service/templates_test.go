package service

import (
	"context"
	"testing"

	"github.com/emzola/sdmagic/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateFilters(page int) data.Filters {
	return data.Filters{
		Page:         page,
		PageSize:     data.TemplatesPerPage,
		Sort:         "-updated_at",
		SortSafeList: []string{"-updated_at"},
	}
}

func TestTemplateLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	template, err := env.svc.CreateTemplate(ctx, "Portrait base", "{subject}, soft light")
	require.NoError(t, err)
	assert.Equal(t, int32(1), template.Version)

	_, err = env.svc.CreateTemplate(ctx, "Portrait base", "other")
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	_, err = env.svc.CreateTemplate(ctx, "", "")
	assert.ErrorIs(t, err, ErrFailedValidation)

	content := "{subject}, golden hour"
	updated, err := env.svc.UpdateTemplate(ctx, template.ID, nil, &content)
	require.NoError(t, err)
	assert.Equal(t, "Portrait base", updated.Name)
	assert.Equal(t, content, updated.Content)

	got, err := env.svc.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, content, got.Content)

	require.NoError(t, env.svc.DeleteTemplate(ctx, template.ID))
	_, err = env.svc.GetTemplate(ctx, template.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, env.svc.DeleteTemplate(ctx, template.ID), ErrRecordNotFound)
}

func TestUpdateTemplateDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateTemplate(ctx, "Landscape", "{place}")
	require.NoError(t, err)
	portrait, err := env.svc.CreateTemplate(ctx, "Portrait", "{subject}")
	require.NoError(t, err)

	name := "Landscape"
	_, err = env.svc.UpdateTemplate(ctx, portrait.ID, &name, nil)
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestListTemplates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Portrait base", "Landscape base", "portrait close-up"} {
		_, err := env.svc.CreateTemplate(ctx, name, "content")
		require.NoError(t, err)
	}

	templates, metadata, err := env.svc.ListTemplates(ctx, "PORTRAIT", templateFilters(1))
	require.NoError(t, err)
	assert.Len(t, templates, 2)
	assert.Equal(t, 2, metadata.TotalRecords)
	assert.Equal(t, 1, metadata.LastPage)

	templates, _, err = env.svc.ListTemplates(ctx, "", templateFilters(1))
	require.NoError(t, err)
	assert.Len(t, templates, 3)

	_, _, err = env.svc.ListTemplates(ctx, "", templateFilters(0))
	assert.ErrorIs(t, err, ErrFailedValidation)
}
