// Package pgerrors classifies driver errors coming back from PostgreSQL.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE of a unique constraint violation.
const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a duplicate key error, whether it
// was raised by lib/pq or already translated by gorm.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return false
}
