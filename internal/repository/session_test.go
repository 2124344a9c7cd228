package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "sessions_access_code_key"}
	if !isUniqueViolation(errors.Wrap(unique, "failed to create session")) {
		t.Error("expected wrapped unique_violation to be detected")
	}

	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign_key_violation must not count as unique_violation")
	}
	if isUniqueViolation(errors.New("duplicate key value violates unique constraint (SQLSTATE 23505)")) {
		t.Error("plain error text must not count without a PgError")
	}
	if isUniqueViolation(nil) {
		t.Error("nil error must not count")
	}
}
