package service

import (
	"context"
	"errors"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/internal/validator"
	"github.com/emzola/sdmagic/repository"
)

type prompts interface {
	CreatePrompt(ctx context.Context, originalText string, translation *string, categoryID int64) (*data.Prompt, error)
	GetPrompt(ctx context.Context, promptID int64) (*data.Prompt, error)
	UpdatePrompt(ctx context.Context, promptID int64, originalText *string, translation *string, categoryID *int64) (*data.Prompt, error)
	DeletePrompt(ctx context.Context, promptID int64) error
	ListPrompts(ctx context.Context, categoryID int64, search string, window data.Window) ([]*data.Prompt, int, error)
}

// CreatePrompt service creates a prompt in an existing category.
func (s *service) CreatePrompt(ctx context.Context, originalText string, translation *string, categoryID int64) (*data.Prompt, error) {
	prompt := &data.Prompt{
		OriginalText:       originalText,
		ChineseTranslation: translation,
		CategoryID:         categoryID,
	}
	v := validator.New()
	if data.ValidatePrompt(v, prompt); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	err := s.repo.CreatePrompt(ctx, prompt)
	if err != nil {
		return nil, s.promptWriteError(err)
	}
	return prompt, nil
}

func (s *service) checkCategory(ctx context.Context, categoryID int64) error {
	_, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrCategoryNotFound
		default:
			return err
		}
	}
	return nil
}

func (s *service) promptWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRecord):
		return duplicateField("original_text", "a prompt with this original text already exists")
	case errors.Is(err, repository.ErrInvalidReference):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrEditConflict):
		return ErrEditConflict
	default:
		return err
	}
}

// GetPrompt service retrieves a prompt.
func (s *service) GetPrompt(ctx context.Context, promptID int64) (*data.Prompt, error) {
	prompt, err := s.repo.GetPrompt(ctx, promptID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return prompt, nil
}

// UpdatePrompt service changes the provided fields of a prompt.
func (s *service) UpdatePrompt(ctx context.Context, promptID int64, originalText *string, translation *string, categoryID *int64) (*data.Prompt, error) {
	prompt, err := s.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	if originalText != nil {
		prompt.OriginalText = *originalText
	}
	if translation != nil {
		prompt.ChineseTranslation = translation
	}
	if categoryID != nil {
		prompt.CategoryID = *categoryID
	}
	v := validator.New()
	if data.ValidatePrompt(v, prompt); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	if categoryID != nil {
		if err := s.checkCategory(ctx, prompt.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdatePrompt(ctx, prompt); err != nil {
		return nil, s.promptWriteError(err)
	}
	return prompt, nil
}

// DeletePrompt service deletes a prompt.
func (s *service) DeletePrompt(ctx context.Context, promptID int64) error {
	err := s.repo.DeletePrompt(ctx, promptID)
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

// ListPrompts service retrieves one window of prompts. A non-zero categoryID
// matches the category and every category below it.
func (s *service) ListPrompts(ctx context.Context, categoryID int64, search string, window data.Window) ([]*data.Prompt, int, error) {
	v := validator.New()
	v.Check(categoryID >= 0, "category_id", "must not be negative")
	if data.ValidateWindow(v, window); !v.Valid() {
		return nil, 0, failedValidation(v.Errors)
	}
	filter := data.PromptFilter{Search: search, Window: window}
	if categoryID != 0 {
		flat, err := s.flatCategories(ctx)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = data.Descendants(flat, categoryID)
	}
	return s.repo.GetAllPrompts(ctx, filter)
}
