package data

import (
	"time"

	"github.com/emzola/sdmagic/internal/validator"
)

// Prompt defines an image-generation prompt and its translation.
type Prompt struct {
	ID                 int64     `json:"id"`
	OriginalText       string    `json:"original_text" yaml:"original_text"`
	ChineseTranslation *string   `json:"chinese_translation" yaml:"chinese_translation,omitempty"`
	CategoryID         int64     `json:"category_id" yaml:"category_id"`
	CreatedAt          time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" yaml:"updated_at"`
	Version            int32     `json:"-" yaml:"-"`
}

func ValidatePrompt(v *validator.Validator, prompt *Prompt) {
	v.Check(validator.NotBlank(prompt.OriginalText), "original_text", "must be provided")
	v.Check(len(prompt.OriginalText) <= 10_000, "original_text", "must not be more than 10000 bytes long")
	if prompt.ChineseTranslation != nil {
		v.Check(len(*prompt.ChineseTranslation) <= 10_000, "chinese_translation", "must not be more than 10000 bytes long")
	}
	v.Check(prompt.CategoryID > 0, "category_id", "must be provided")
}

// PromptFilter narrows a prompt listing. An empty CategoryIDs matches every category.
type PromptFilter struct {
	CategoryIDs []int64
	Search      string
	Window      Window
}
