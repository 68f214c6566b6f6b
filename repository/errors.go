package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrInvalidReference = errors.New("invalid reference")
	ErrCycle            = errors.New("category cycle")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html.
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// translate maps constraint violations reported by the driver to repository errors.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case uniqueViolation:
		return ErrDuplicateRecord
	case foreignKeyViolation:
		return ErrInvalidReference
	}
	return err
}
