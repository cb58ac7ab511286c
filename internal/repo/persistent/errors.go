package persistent

import (
	"errors"
	"fmt"

	"imersao-completa/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

// translateError maps driver errors onto entity sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", entity.ErrDuplicate, pgErr.ConstraintName)
		case invalidTextRepresentation:
			// A malformed uuid can never match a row.
			return fmt.Errorf("%w: %s", entity.ErrNotFound, pgErr.Message)
		}
	}
	return err
}
