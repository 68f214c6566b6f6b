package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/sdmagic/data"
	"github.com/lib/pq"
)

type categories interface {
	CreateCategory(ctx context.Context, category *data.Category) error
	GetCategory(ctx context.Context, categoryID int64) (*data.Category, error)
	GetDefaultCategory(ctx context.Context) (*data.Category, error)
	GetAllCategories(ctx context.Context) ([]*data.Category, error)
	UpdateCategory(ctx context.Context, category *data.Category) error
	DeleteCategory(ctx context.Context, categoryID, defaultID int64) (int64, error)
}

// CreateCategory creates a new category record.
func (r *repository) CreateCategory(ctx context.Context, category *data.Category) error {
	query := `
		INSERT INTO prompt_categories (name, parent_id)
		VALUES ($1, NULLIF($2::bigint, 0))
		RETURNING id, is_default, created_at, updated_at`
	args := []interface{}{category.Name, category.ParentID}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.IsDefault,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return translate(err)
	}
	return nil
}

// GetCategory retrieves a category record.
func (r *repository) GetCategory(ctx context.Context, categoryID int64) (*data.Category, error) {
	if categoryID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, name, COALESCE(parent_id, 0), is_default, created_at, updated_at
		FROM prompt_categories
		WHERE id = $1`
	return r.getCategory(ctx, query, categoryID)
}

// GetDefaultCategory retrieves the category that receives orphaned prompts.
func (r *repository) GetDefaultCategory(ctx context.Context) (*data.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, 0), is_default, created_at, updated_at
		FROM prompt_categories
		WHERE is_default
		LIMIT 1`
	return r.getCategory(ctx, query)
}

func (r *repository) getCategory(ctx context.Context, query string, args ...interface{}) (*data.Category, error) {
	var category data.Category
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Name,
		&category.ParentID,
		&category.IsDefault,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &category, nil
}

// GetAllCategories retrieves every category record as a flat list ordered by ID.
func (r *repository) GetAllCategories(ctx context.Context) ([]*data.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, 0), is_default, created_at, updated_at
		FROM prompt_categories
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []*data.Category{}
	for rows.Next() {
		var category data.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.ParentID,
			&category.IsDefault,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// categoryTreeLock is the advisory lock key held by transactions that change
// the shape of the category tree.
const categoryTreeLock int64 = 0x5d3a617463

// lockCategoryTree serializes moves and subtree deletes until tx ends.
func lockCategoryTree(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, categoryTreeLock)
	return err
}

// UpdateCategory renames or moves a category record. The default category is
// never touched, and a move that would place the category below itself fails
// with ErrCycle.
func (r *repository) UpdateCategory(ctx context.Context, category *data.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err = lockCategoryTree(ctx, tx); err != nil {
		return err
	}

	query := `
		UPDATE prompt_categories
		SET name = $1, parent_id = NULLIF($2::bigint, 0), updated_at = CURRENT_TIMESTAMP(0)
		WHERE id = $3 AND NOT is_default
		AND NOT EXISTS (
			WITH RECURSIVE ancestors AS (
				SELECT id, parent_id FROM prompt_categories WHERE id = $2
				UNION
				SELECT c.id, c.parent_id FROM prompt_categories c
				INNER JOIN ancestors ON c.id = ancestors.parent_id
			)
			SELECT 1 FROM ancestors WHERE id = $3
		)
		RETURNING updated_at`
	args := []interface{}{category.Name, category.ParentID, category.ID}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&category.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return translate(err)
		}
		var exists bool
		query = `SELECT EXISTS (SELECT 1 FROM prompt_categories WHERE id = $1 AND NOT is_default)`
		if err := tx.QueryRowContext(ctx, query, category.ID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrCycle
		}
		return ErrRecordNotFound
	}
	return tx.Commit()
}

// DeleteCategory deletes a category and its whole subtree in one transaction.
// Prompts filed anywhere in the subtree are moved to defaultID first. It returns
// the number of prompts moved.
func (r *repository) DeleteCategory(ctx context.Context, categoryID, defaultID int64) (int64, error) {
	if categoryID < 1 {
		return 0, ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	if err = lockCategoryTree(ctx, tx); err != nil {
		return 0, err
	}

	query := `
		WITH RECURSIVE subtree AS (
			SELECT id FROM prompt_categories WHERE id = $1 AND NOT is_default
			UNION
			SELECT c.id FROM prompt_categories c
			INNER JOIN subtree ON c.parent_id = subtree.id
		)
		SELECT id FROM subtree`
	rows, err := tx.QueryContext(ctx, query, categoryID)
	if err != nil {
		return 0, err
	}
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, ErrRecordNotFound
	}

	query = `
		UPDATE prompts
		SET category_id = $1, updated_at = CURRENT_TIMESTAMP(0), version = version + 1
		WHERE category_id = ANY($2)`
	result, err := tx.ExecContext(ctx, query, defaultID, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("move prompts to default category: %w", translate(err))
	}
	moved, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	query = `
		DELETE FROM prompt_categories
		WHERE id = ANY($1)`
	if _, err = tx.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return moved, nil
}
