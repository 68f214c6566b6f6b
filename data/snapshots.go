package data

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Snapshot is a full export of the prompt library.
type Snapshot struct {
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at"`
	Categories []*Category `json:"categories" yaml:"categories"`
	Prompts    []*Prompt   `json:"prompts" yaml:"prompts"`
	Templates  []*Template `json:"templates" yaml:"templates"`
}

// Encode serializes the snapshot and returns the body and its content type.
func (s *Snapshot) Encode(format string) ([]byte, string, error) {
	switch format {
	case FormatJSON:
		body, err := json.MarshalIndent(s, "", "\t")
		return body, "application/json", err
	case FormatYAML:
		body, err := yaml.Marshal(s)
		return body, "application/yaml", err
	}
	return nil, "", fmt.Errorf("unsupported snapshot format %q", format)
}

// SnapshotKey names the object a snapshot taken at t is stored under. A random
// suffix keeps exports taken at the same instant apart.
func SnapshotKey(t time.Time, format string) string {
	return fmt.Sprintf("snapshots/%s-%s.%s", t.UTC().Format("20060102T150405.000Z"), uuid.NewString(), format)
}
