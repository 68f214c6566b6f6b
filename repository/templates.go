package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/sdmagic/data"
)

type templates interface {
	CreateTemplate(ctx context.Context, template *data.Template) error
	GetTemplate(ctx context.Context, templateID int64) (*data.Template, error)
	UpdateTemplate(ctx context.Context, template *data.Template) error
	DeleteTemplate(ctx context.Context, templateID int64) error
	GetAllTemplates(ctx context.Context, name string, filters data.Filters) ([]*data.Template, data.Metadata, error)
	ExportTemplates(ctx context.Context) ([]*data.Template, error)
}

// CreateTemplate creates a new template record.
func (r *repository) CreateTemplate(ctx context.Context, template *data.Template) error {
	query := `
		INSERT INTO prompt_templates (name, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, version`
	args := []interface{}{template.Name, template.Content}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&template.ID,
		&template.CreatedAt,
		&template.UpdatedAt,
		&template.Version,
	)
	if err != nil {
		return translate(err)
	}
	return nil
}

// GetTemplate retrieves a template record.
func (r *repository) GetTemplate(ctx context.Context, templateID int64) (*data.Template, error) {
	if templateID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, name, content, created_at, updated_at, version
		FROM prompt_templates
		WHERE id = $1`
	var template data.Template
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, templateID).Scan(
		&template.ID,
		&template.Name,
		&template.Content,
		&template.CreatedAt,
		&template.UpdatedAt,
		&template.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &template, nil
}

// UpdateTemplate updates a template record if its version has not moved on.
func (r *repository) UpdateTemplate(ctx context.Context, template *data.Template) error {
	query := `
		UPDATE prompt_templates
		SET name = $1, content = $2, updated_at = CURRENT_TIMESTAMP(0), version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING updated_at, version`
	args := []interface{}{template.Name, template.Content, template.ID, template.Version}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&template.UpdatedAt, &template.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return translate(err)
		}
	}
	return nil
}

// DeleteTemplate deletes a template record.
func (r *repository) DeleteTemplate(ctx context.Context, templateID int64) error {
	if templateID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM prompt_templates
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, templateID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetAllTemplates retrieves a paginated list of template records whose name
// contains the given text, ignoring case.
func (r *repository) GetAllTemplates(ctx context.Context, name string, filters data.Filters) ([]*data.Template, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, name, content, created_at, updated_at, version
		FROM prompt_templates
		WHERE ($1 = '' OR strpos(lower(name), lower($1)) > 0)
		ORDER BY %s %s, id DESC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{name, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	templates := []*data.Template{}
	for rows.Next() {
		var template data.Template
		err := rows.Scan(
			&totalRecords,
			&template.ID,
			&template.Name,
			&template.Content,
			&template.CreatedAt,
			&template.UpdatedAt,
			&template.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		templates = append(templates, &template)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return templates, metadata, nil
}

// ExportTemplates retrieves every template record ordered by ID.
func (r *repository) ExportTemplates(ctx context.Context) ([]*data.Template, error) {
	query := `
		SELECT id, name, content, created_at, updated_at, version
		FROM prompt_templates
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	templates := []*data.Template{}
	for rows.Next() {
		var template data.Template
		err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Content,
			&template.CreatedAt,
			&template.UpdatedAt,
			&template.Version,
		)
		if err != nil {
			return nil, err
		}
		templates = append(templates, &template)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
