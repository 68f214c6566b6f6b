package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/emzola/sdmagic/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectTreeLock(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs(categoryTreeLock).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestUpdateCategory(t *testing.T) {
	t.Run("moved", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		updatedAt := time.Now().Truncate(time.Second)
		expectTreeLock(mock)
		mock.ExpectQuery(`UPDATE prompt_categories`).
			WithArgs("A", int64(3), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
		mock.ExpectCommit()

		category := &data.Category{ID: 2, Name: "A", ParentID: 3}
		require.NoError(t, repo.UpdateCategory(context.Background(), category))
		assert.Equal(t, updatedAt, category.UpdatedAt)
	})

	t.Run("below its own subtree", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectTreeLock(mock)
		mock.ExpectQuery(`UPDATE prompt_categories`).
			WithArgs("A", int64(3), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.UpdateCategory(context.Background(), &data.Category{ID: 2, Name: "A", ParentID: 3})
		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectTreeLock(mock)
		mock.ExpectQuery(`UPDATE prompt_categories`).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		err := repo.UpdateCategory(context.Background(), &data.Category{ID: 9, Name: "A"})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestDeleteCategoryHoldsTreeLock(t *testing.T) {
	repo, mock := newMockRepository(t)
	expectTreeLock(mock)
	mock.ExpectQuery(`WITH RECURSIVE subtree`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(4))
	mock.ExpectExec(`UPDATE prompts`).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM prompt_categories`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	moved, err := repo.DeleteCategory(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), moved)
}
