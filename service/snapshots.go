package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/validator"
)

type snapshots interface {
	ExportSnapshot(ctx context.Context, format string) (string, error)
}

// ExportSnapshot service collects the whole library and uploads it to object
// storage in the background. It returns the key the snapshot is stored under.
func (s *service) ExportSnapshot(ctx context.Context, format string) (string, error) {
	if s.store == nil {
		return "", ErrStorageDisabled
	}
	if format == "" {
		format = data.FormatJSON
	}
	v := validator.New()
	v.Check(validator.PermittedValue(format, data.FormatJSON, data.FormatYAML), "format", "must be json or yaml")
	if !v.Valid() {
		return "", failedValidation(v.Errors)
	}

	flat, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return "", err
	}
	prompts, err := s.repo.ExportPrompts(ctx)
	if err != nil {
		return "", err
	}
	templates, err := s.repo.ExportTemplates(ctx)
	if err != nil {
		return "", err
	}
	snapshot := &data.Snapshot{
		ExportedAt: time.Now().UTC(),
		Categories: data.BuildCategoryTree(flat),
		Prompts:    prompts,
		Templates:  templates,
	}
	body, contentType, err := snapshot.Encode(format)
	if err != nil {
		return "", err
	}
	key := data.SnapshotKey(snapshot.ExportedAt, format)

	s.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.store.Put(ctx, key, contentType, body); err != nil {
			s.logger.PrintError(fmt.Errorf("upload snapshot: %w", err), map[string]string{"key": key})
			return
		}
		s.logger.PrintInfo("snapshot uploaded", map[string]string{
			"key":   key,
			"bytes": strconv.Itoa(len(body)),
		})
	})
	return key, nil
}
