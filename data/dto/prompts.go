package dto

import "github.com/emzola/sdmagic/data"

// CreatePromptRequestBody defines the request body for CreatePrompt service.
type CreatePromptRequestBody struct {
	OriginalText       string  `json:"original_text"`
	ChineseTranslation *string `json:"chinese_translation"`
	CategoryID         int64   `json:"category_id"`
}

// UpdatePromptRequestBody defines the request body for UpdatePrompt service. The fields
// are pointers so that only the provided ones are changed.
type UpdatePromptRequestBody struct {
	OriginalText       *string `json:"original_text"`
	ChineseTranslation *string `json:"chinese_translation"`
	CategoryID         *int64  `json:"category_id"`
}

// QsListPrompts defines the query strings used for listing prompts.
type QsListPrompts struct {
	CategoryID int64
	Search     string
	Window     data.Window
}
