package data

import (
	"time"

	"github.com/emzola/sdmagic/internal/validator"
)

// TemplatesPerPage is the default page size for template listings.
const TemplatesPerPage = 20

// Template defines a named, reusable prompt composition.
type Template struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	Version   int32     `json:"-" yaml:"-"`
}

func ValidateTemplate(v *validator.Validator, template *Template) {
	v.Check(validator.NotBlank(template.Name), "name", "must be provided")
	v.Check(validator.MaxChars(template.Name, 100), "name", "must not be more than 100 characters long")
	v.Check(validator.NotBlank(template.Content), "content", "must be provided")
	v.Check(len(template.Content) <= 50_000, "content", "must not be more than 50000 bytes long")
}
