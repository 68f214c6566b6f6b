package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportSnapshotJSON(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	art, err := env.svc.CreateCategory(ctx, "Art", 0)
	require.NoError(t, err)
	_, err = env.svc.CreatePrompt(ctx, "oil painting", nil, art.ID)
	require.NoError(t, err)
	_, err = env.svc.CreateTemplate(ctx, "Portrait", "{subject}")
	require.NoError(t, err)

	key, err := env.svc.ExportSnapshot(ctx, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "snapshots/"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	env.wg.Wait()
	body, ok := env.store.objects[key]
	require.True(t, ok)
	assert.Equal(t, "application/json", env.store.types[key])

	var snapshot struct {
		Categories []map[string]any `json:"categories"`
		Prompts    []map[string]any `json:"prompts"`
		Templates  []map[string]any `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(body, &snapshot))
	assert.Len(t, snapshot.Categories, 2)
	assert.Len(t, snapshot.Prompts, 1)
	assert.Len(t, snapshot.Templates, 1)
	assert.Contains(t, env.logs.String(), "snapshot uploaded")
}

func TestExportSnapshotYAML(t *testing.T) {
	env := newTestEnv(t)

	key, err := env.svc.ExportSnapshot(context.Background(), "yaml")
	require.NoError(t, err)
	env.wg.Wait()

	var snapshot map[string]any
	require.NoError(t, yaml.Unmarshal(env.store.objects[key], &snapshot))
	assert.Contains(t, snapshot, "categories")
	assert.Equal(t, "application/yaml", env.store.types[key])
}

func TestExportSnapshotErrors(t *testing.T) {
	t.Run("bad format", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.ExportSnapshot(context.Background(), "xml")
		assert.ErrorIs(t, err, ErrFailedValidation)
	})

	t.Run("storage disabled", func(t *testing.T) {
		env := newTestEnvWith(t, newMemRepo(), nil)
		_, err := env.svc.ExportSnapshot(context.Background(), "json")
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("upload failure is logged", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.err = errUnavailable
		_, err := env.svc.ExportSnapshot(context.Background(), "json")
		require.NoError(t, err)
		env.wg.Wait()
		assert.Contains(t, env.logs.String(), errUnavailable.Error())
	})
}
