package data

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshotEncode(t *testing.T) {
	translation := "猫耳"
	snapshot := &Snapshot{
		ExportedAt: time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC),
		Categories: BuildCategoryTree([]*Category{{ID: 1, Name: DefaultCategoryName, IsDefault: true}}),
		Prompts:    []*Prompt{{ID: 1, OriginalText: "cat ears", ChineseTranslation: &translation, CategoryID: 1}},
		Templates:  []*Template{{ID: 1, Name: "portrait", Content: "masterpiece, {subject}"}},
	}

	t.Run("json", func(t *testing.T) {
		body, contentType, err := snapshot.Encode(FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)

		var decoded Snapshot
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, "cat ears", decoded.Prompts[0].OriginalText)
		assert.True(t, decoded.Categories[0].IsDefault)
	})

	t.Run("yaml", func(t *testing.T) {
		body, contentType, err := snapshot.Encode(FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "application/yaml", contentType)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(body, &decoded))
		categories := decoded["categories"].([]any)
		first := categories[0].(map[string]any)
		assert.Equal(t, true, first["isDefault"])
		assert.Equal(t, "portrait", decoded["templates"].([]any)[0].(map[string]any)["name"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := snapshot.Encode("xml")
		assert.Error(t, err)
	})
}

func TestSnapshotKey(t *testing.T) {
	at := time.Date(2026, 10, 17, 8, 30, 5, 250_000_000, time.FixedZone("CST", 8*3600))
	key := SnapshotKey(at, FormatYAML)
	assert.True(t, strings.HasPrefix(key, "snapshots/20261017T003005.250Z-"), key)
	assert.True(t, strings.HasSuffix(key, ".yaml"), key)

	id := strings.TrimSuffix(strings.TrimPrefix(key, "snapshots/20261017T003005.250Z-"), ".yaml")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.NotEqual(t, key, SnapshotKey(at, FormatYAML), "same instant, distinct keys")
}
