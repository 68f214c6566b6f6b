package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/validator"
	"github.com/emzola/sdmagic/repository"
	"github.com/jellydator/ttlcache/v3"
)

const categoriesCacheKey = "categories"

type categories interface {
	ListCategories(ctx context.Context) ([]*data.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*data.Category, error)
	CreateCategory(ctx context.Context, name string, parentID int64) (*data.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, name *string, parentID *int64) (*data.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) (int64, error)
}

// flatCategories returns every category, from the cache when possible. The
// returned slice is shared and must not be modified. A list read before the
// latest invalidation is returned but never cached.
func (s *service) flatCategories(ctx context.Context) ([]*data.Category, error) {
	if item := s.cache.Get(categoriesCacheKey); item != nil {
		return item.Value(), nil
	}
	s.cacheMu.Lock()
	generation := s.cacheGen
	s.cacheMu.Unlock()

	flat, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if generation == s.cacheGen {
		s.cache.Set(categoriesCacheKey, flat, ttlcache.DefaultTTL)
	}
	return flat, nil
}

func (s *service) invalidateCategories() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Delete(categoriesCacheKey)
}

// ListCategories service retrieves the category forest, default category included.
func (s *service) ListCategories(ctx context.Context) ([]*data.Category, error) {
	flat, err := s.flatCategories(ctx)
	if err != nil {
		return nil, err
	}
	return data.BuildCategoryTree(flat), nil
}

// GetCategory service retrieves a category together with its subtree.
func (s *service) GetCategory(ctx context.Context, categoryID int64) (*data.Category, error) {
	forest, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	category, ok := data.FindCategory(forest, categoryID)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return category, nil
}

// CreateCategory service creates a category at the root or below parentID.
func (s *service) CreateCategory(ctx context.Context, name string, parentID int64) (*data.Category, error) {
	category := &data.Category{
		Name:     strings.TrimSpace(name),
		ParentID: parentID,
		Children: []*data.Category{},
	}
	v := validator.New()
	if data.ValidateCategory(v, category); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	if parentID != data.RootID {
		if err := s.checkParent(ctx, parentID); err != nil {
			return nil, err
		}
	}
	err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, duplicateField("name", "a category with this name already exists")
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrParentNotFound
		default:
			return nil, err
		}
	}
	s.invalidateCategories()
	return category, nil
}

// checkParent makes sure a category may be placed below parentID.
func (s *service) checkParent(ctx context.Context, parentID int64) error {
	parent, err := s.repo.GetCategory(ctx, parentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrParentNotFound
		default:
			return err
		}
	}
	if parent.IsDefault {
		return ErrDefaultParent
	}
	return nil
}

// UpdateCategory service renames a category and, when parentID is set, moves it.
// The default category is read-only.
func (s *service) UpdateCategory(ctx context.Context, categoryID int64, name *string, parentID *int64) (*data.Category, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if category.IsDefault {
		return nil, ErrDefaultCategory
	}
	if name != nil {
		category.Name = strings.TrimSpace(*name)
	}
	v := validator.New()
	if parentID != nil {
		category.ParentID = *parentID
		v.Check(category.ParentID != category.ID, "parentId", "must not be the category itself")
	}
	if data.ValidateCategory(v, category); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	if parentID != nil && category.ParentID != data.RootID {
		if err := s.checkParent(ctx, category.ParentID); err != nil {
			return nil, err
		}
		flat, err := s.repo.GetAllCategories(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range data.Descendants(flat, category.ID) {
			if id == category.ParentID {
				return nil, ErrCategoryCycle
			}
		}
	}
	err = s.repo.UpdateCategory(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, duplicateField("name", "a category with this name already exists")
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrParentNotFound
		case errors.Is(err, repository.ErrCycle):
			return nil, ErrCategoryCycle
		default:
			return nil, err
		}
	}
	s.invalidateCategories()
	return s.GetCategory(ctx, category.ID)
}

// DeleteCategory service deletes a category and everything below it. Prompts
// filed there move to the default category; their number is returned.
func (s *service) DeleteCategory(ctx context.Context, categoryID int64) (int64, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return 0, ErrRecordNotFound
		default:
			return 0, err
		}
	}
	if category.IsDefault {
		return 0, ErrDefaultCategory
	}
	defaultCategory, err := s.repo.GetDefaultCategory(ctx)
	if err != nil {
		return 0, fmt.Errorf("load default category: %w", err)
	}
	moved, err := s.repo.DeleteCategory(ctx, categoryID, defaultCategory.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return 0, ErrRecordNotFound
		default:
			return 0, err
		}
	}
	s.invalidateCategories()
	s.logger.PrintInfo("category deleted", map[string]string{
		"category_id":   strconv.FormatInt(categoryID, 10),
		"prompts_moved": strconv.FormatInt(moved, 10),
	})
	return moved, nil
}
