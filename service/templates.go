package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/validator"
	"github.com/emzola/sdmagic/repository"
)

type templates interface {
	CreateTemplate(ctx context.Context, name, content string) (*data.Template, error)
	GetTemplate(ctx context.Context, templateID int64) (*data.Template, error)
	UpdateTemplate(ctx context.Context, templateID int64, name *string, content *string) (*data.Template, error)
	DeleteTemplate(ctx context.Context, templateID int64) error
	ListTemplates(ctx context.Context, name string, filters data.Filters) ([]*data.Template, data.Metadata, error)
}

// CreateTemplate service creates a template.
func (s *service) CreateTemplate(ctx context.Context, name, content string) (*data.Template, error) {
	template := &data.Template{
		Name:    strings.TrimSpace(name),
		Content: content,
	}
	v := validator.New()
	if data.ValidateTemplate(v, template); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err := s.repo.CreateTemplate(ctx, template)
	if err != nil {
		return nil, templateWriteError(err)
	}
	return template, nil
}

func templateWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRecord):
		return duplicateField("name", "a template with this name already exists")
	case errors.Is(err, repository.ErrEditConflict):
		return ErrEditConflict
	default:
		return err
	}
}

// GetTemplate service retrieves a template.
func (s *service) GetTemplate(ctx context.Context, templateID int64) (*data.Template, error) {
	template, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return template, nil
}

// UpdateTemplate service changes the provided fields of a template.
func (s *service) UpdateTemplate(ctx context.Context, templateID int64, name *string, content *string) (*data.Template, error) {
	template, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		template.Name = strings.TrimSpace(*name)
	}
	if content != nil {
		template.Content = *content
	}
	v := validator.New()
	if data.ValidateTemplate(v, template); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	if err := s.repo.UpdateTemplate(ctx, template); err != nil {
		return nil, templateWriteError(err)
	}
	return template, nil
}

// DeleteTemplate service deletes a template.
func (s *service) DeleteTemplate(ctx context.Context, templateID int64) error {
	err := s.repo.DeleteTemplate(ctx, templateID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ListTemplates service retrieves a paginated list of templates, most recently
// updated first unless the filters say otherwise.
func (s *service) ListTemplates(ctx context.Context, name string, filters data.Filters) ([]*data.Template, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	return s.repo.GetAllTemplates(ctx, strings.TrimSpace(name), filters)
}
