package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/emzola/sdmagic/data"
	"github.com/lib/pq"
)

type prompts interface {
	CreatePrompt(ctx context.Context, prompt *data.Prompt) error
	GetPrompt(ctx context.Context, promptID int64) (*data.Prompt, error)
	UpdatePrompt(ctx context.Context, prompt *data.Prompt) error
	DeletePrompt(ctx context.Context, promptID int64) error
	GetAllPrompts(ctx context.Context, filter data.PromptFilter) ([]*data.Prompt, int, error)
	ExportPrompts(ctx context.Context) ([]*data.Prompt, error)
}

// CreatePrompt creates a new prompt record.
func (r *repository) CreatePrompt(ctx context.Context, prompt *data.Prompt) error {
	query := `
		INSERT INTO prompts (original_text, chinese_translation, category_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at, version`
	args := []interface{}{prompt.OriginalText, prompt.ChineseTranslation, prompt.CategoryID}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&prompt.ID,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
		&prompt.Version,
	)
	if err != nil {
		return translate(err)
	}
	return nil
}

// GetPrompt retrieves a prompt record.
func (r *repository) GetPrompt(ctx context.Context, promptID int64) (*data.Prompt, error) {
	if promptID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, original_text, chinese_translation, category_id, created_at, updated_at, version
		FROM prompts
		WHERE id = $1`
	var prompt data.Prompt
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, promptID).Scan(
		&prompt.ID,
		&prompt.OriginalText,
		&prompt.ChineseTranslation,
		&prompt.CategoryID,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
		&prompt.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &prompt, nil
}

// UpdatePrompt updates a prompt record if its version has not moved on.
func (r *repository) UpdatePrompt(ctx context.Context, prompt *data.Prompt) error {
	query := `
		UPDATE prompts
		SET original_text = $1, chinese_translation = $2, category_id = $3, updated_at = CURRENT_TIMESTAMP(0), version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING updated_at, version`
	args := []interface{}{prompt.OriginalText, prompt.ChineseTranslation, prompt.CategoryID, prompt.ID, prompt.Version}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&prompt.UpdatedAt, &prompt.Version)
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

// DeletePrompt deletes a prompt record.
func (r *repository) DeletePrompt(ctx context.Context, promptID int64) error {
	if promptID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM prompts
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, promptID)
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

// promptFilterClause selects the prompts matching a category list ($1) and a
// search term ($2).
const promptFilterClause = `
		WHERE (cardinality($1::bigint[]) = 0 OR category_id = ANY($1))
		AND (
			$2 = ''
			OR strpos(lower(original_text), lower($2)) > 0
			OR strpos(lower(COALESCE(chinese_translation, '')), lower($2)) > 0
		)`

// GetAllPrompts retrieves one window of prompt records and the number of records
// matching the filter. The search term matches the original text or the
// translation, ignoring case.
func (r *repository) GetAllPrompts(ctx context.Context, filter data.PromptFilter) ([]*data.Prompt, int, error) {
	query := `
		SELECT count(*) OVER(), id, original_text, chinese_translation, category_id, created_at, updated_at, version
		FROM prompts` + promptFilterClause + `
		ORDER BY id ASC
		LIMIT $3 OFFSET $4`
	// A nil slice would be sent as NULL rather than an empty array.
	categoryIDs := filter.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []int64{}
	}
	args := []interface{}{
		pq.Array(categoryIDs),
		filter.Search,
		filter.Window.Limit,
		filter.Window.Skip,
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	totalRecords := 0
	prompts := []*data.Prompt{}
	for rows.Next() {
		var prompt data.Prompt
		err := rows.Scan(
			&totalRecords,
			&prompt.ID,
			&prompt.OriginalText,
			&prompt.ChineseTranslation,
			&prompt.CategoryID,
			&prompt.CreatedAt,
			&prompt.UpdatedAt,
			&prompt.Version,
		)
		if err != nil {
			return nil, 0, err
		}
		prompts = append(prompts, &prompt)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	// A window past the last match returns no rows to carry the count.
	if len(prompts) == 0 && filter.Window.Skip > 0 {
		query = `SELECT count(*) FROM prompts` + promptFilterClause
		if err := r.db.QueryRowContext(ctx, query, args[:2]...).Scan(&totalRecords); err != nil {
			return nil, 0, err
		}
	}
	return prompts, totalRecords, nil
}

// ExportPrompts retrieves every prompt record ordered by ID.
func (r *repository) ExportPrompts(ctx context.Context) ([]*data.Prompt, error) {
	query := `
		SELECT id, original_text, chinese_translation, category_id, created_at, updated_at, version
		FROM prompts
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	prompts := []*data.Prompt{}
	for rows.Next() {
		var prompt data.Prompt
		err := rows.Scan(
			&prompt.ID,
			&prompt.OriginalText,
			&prompt.ChineseTranslation,
			&prompt.CategoryID,
			&prompt.CreatedAt,
			&prompt.UpdatedAt,
			&prompt.Version,
		)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, &prompt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return prompts, nil
}
