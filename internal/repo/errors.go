package repo

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("foreign key violation")
	ErrTransient  = errors.New("store temporarily unavailable")
)

// SQLite extended result codes.
const (
	sqliteBusy             = 5
	sqliteLocked           = 6
	sqliteConstraintPK     = 1555
	sqliteConstraintUnique = 2067
	sqliteConstraintFK     = 787
	// ON DELETE RESTRICT fires as a trigger constraint, not a foreign key one.
	sqliteConstraintTrigger = 1811
)

// sqliteCoder matches the modernc SQLite driver error without importing it.
type sqliteCoder interface {
	Code() int
}

// classify tags a store error with one of the package sentinels while
// keeping the original error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if tag := tagOf(err); tag != nil {
		if errors.Is(err, tag) {
			return err
		}
		return fmt.Errorf("%w: %w", tag, err)
	}
	return err
}

func tagOf(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, ErrDuplicate):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, ErrForeignKey):
		return ErrForeignKey
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, driver.ErrBadConn), errors.Is(err, ErrTransient):
		return ErrTransient
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return ErrDuplicate
		case pgErr.Code == "23503":
			return ErrForeignKey
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == "40001", pgErr.Code == "40P01",
			pgErr.Code == "53300", pgErr.Code == "57P01", pgErr.Code == "57P03":
			return ErrTransient
		}
		return nil
	}

	var sqlErr sqliteCoder
	if errors.As(err, &sqlErr) {
		code := sqlErr.Code()
		switch {
		case code == sqliteConstraintUnique, code == sqliteConstraintPK:
			return ErrDuplicate
		case code == sqliteConstraintFK,
			code == sqliteConstraintTrigger && strings.Contains(err.Error(), "FOREIGN KEY"):
			return ErrForeignKey
		case code&0xff == sqliteBusy, code&0xff == sqliteLocked:
			return ErrTransient
		}
	}
	return nil
}
