package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection refused")
	undefinedTable := &pgconn.PgError{Code: pgerrcode.UndefinedTable}

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("get town: %w", pgx.ErrNoRows), ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, ErrAlreadyExists},
		{"foreign key violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, ErrConflict},
		{"check violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, ErrConflict},
		{"other pg error", undefinedTable, undefinedTable},
		{"other error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapError(tt.err))
		})
	}
}
