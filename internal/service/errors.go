package service

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// NotFoundError reports a primary key with no row behind it.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports a unique field that is already taken.
type ConflictError struct {
	Field string
	Value interface{}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%v' already exists", e.Field, e.Value)
}

// ReferenceError reports a foreign-key value with no target row.
type ReferenceError struct {
	Field string
	Value interface{}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %v does not exist", e.Field, e.Value)
}

// ValidationError reports a malformed field or an unknown enumeration code.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "Validation failed: " + e.Reason
	}
	return fmt.Sprintf("Validation failed: field '%s' %s", e.Field, e.Reason)
}

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// StoreFault wraps an error returned by the database.
type StoreFault struct {
	Err error
}

func (e *StoreFault) Error() string {
	return "Database error: " + e.Err.Error()
}

func (e *StoreFault) Unwrap() error {
	return e.Err
}

var ErrNoFieldsToUpdate = &BadRequestError{Message: "no fields to update"}

func storeFault(err error) error {
	if err == nil {
		return nil
	}
	var fault *StoreFault
	if errors.As(err, &fault) {
		return err
	}
	return &StoreFault{Err: err}
}

// isDuplicateKey recognises unique violations from every supported dialect,
// whether or not GORM translated them.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return false
}

// classifyWrite turns an error from an insert or update into the error the
// caller should see. uniqueField names the column a duplicate-key error is
// reported against.
func classifyWrite(err error, uniqueField string, value interface{}) error {
	if err == nil {
		return nil
	}
	if uniqueField != "" && isDuplicateKey(err) {
		return &ConflictError{Field: uniqueField, Value: value}
	}
	return storeFault(err)
}
