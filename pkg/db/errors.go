package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
)

// SQLSTATE classes for the constraint violations the ledger cares about.
const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// Classify maps a driver error onto the ledger's error taxonomy. Unrecognized
// errors come back wrapped as internal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "record not found")
	}

	switch sqlState(err) {
	case pgCodeUniqueViolation:
		return pkgerrors.Wrap(pkgerrors.CodeUniqueViolation, err, "duplicate value")
	case pgCodeForeignKeyViolation:
		return pkgerrors.Wrap(pkgerrors.CodeForeignKeyViolation, err, "missing referenced record")
	case pgCodeCheckViolation:
		return pkgerrors.Wrap(pkgerrors.CodeCheckViolation, err, "check constraint violated")
	}

	// The sqlite dialect used in tests reports constraints by message only.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "duplicate key value"):
		return pkgerrors.Wrap(pkgerrors.CodeUniqueViolation, err, "duplicate value")
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return pkgerrors.Wrap(pkgerrors.CodeForeignKeyViolation, err, "missing referenced record")
	case strings.Contains(msg, "CHECK constraint failed"):
		return pkgerrors.Wrap(pkgerrors.CodeCheckViolation, err, "check constraint violated")
	}

	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "database error")
}

func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation reports whether the provided error is a uniqueness
// violation. When constraintName is provided, the helper additionally looks
// for the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	classified := pkgerrors.As(Classify(err))
	if classified == nil || classified.Code() != pkgerrors.CodeUniqueViolation {
		return false
	}
	if constraintName != "" {
		return strings.Contains(err.Error(), constraintName)
	}
	return true
}

// IsForeignKeyViolation reports whether the error is a referential
// integrity failure.
func IsForeignKeyViolation(err error) bool {
	classified := pkgerrors.As(Classify(err))
	return classified != nil && classified.Code() == pkgerrors.CodeForeignKeyViolation
}

// IsCheckViolation reports whether the error is a check constraint failure.
func IsCheckViolation(err error) bool {
	classified := pkgerrors.As(Classify(err))
	return classified != nil && classified.Code() == pkgerrors.CodeCheckViolation
}
