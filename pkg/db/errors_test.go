package db

import (
	"errors"
	"testing"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "members_pkey" (SQLSTATE 23505)`)
	sqliteErr := errors.New("UNIQUE constraint failed: members.contact_number")

	if !IsUniqueViolation(pgErr, "") {
		t.Fatal("postgres duplicate key message should match")
	}
	if !IsUniqueViolation(sqliteErr, "") {
		t.Fatal("sqlite unique constraint message should match")
	}
	if !IsUniqueViolation(pgErr, "members_pkey") {
		t.Fatal("constraint name should match")
	}
	if IsUniqueViolation(pgErr, "products_pkey") {
		t.Fatal("unrelated constraint name should not match")
	}
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatal("unrelated error should not match")
	}
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not match")
	}
}
