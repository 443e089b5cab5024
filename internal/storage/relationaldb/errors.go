package relationaldb

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for different categories of database errors
var (
	// Configuration errors
	ErrMissingDatabase        = errors.New("database name is required")
	ErrInvalidDriver          = errors.New("invalid database driver")
	ErrInvalidMaxOpenConns    = errors.New("max open connections must be >= 0")
	ErrInvalidMaxIdleConns    = errors.New("max idle connections must be >= 0")
	ErrMaxIdleExceedsMaxOpen  = errors.New("max idle connections cannot exceed max open connections")
	ErrInvalidTimeout         = errors.New("timeout must be positive")
	ErrInvalidConnMaxLifetime = errors.New("connection max lifetime must be >= 0")
	ErrInvalidMaxRetries      = errors.New("max retries must be >= 0")
	ErrInvalidRetryDelay      = errors.New("retry delay must be >= 0")

	// Connection errors
	ErrDatabaseClosed = errors.New("database connection is closed")

	// Transaction errors
	ErrTransactionClosed = errors.New("transaction is closed")

	// Data errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidLimit        = errors.New("invalid query limit")
)

// ErrorType represents different categories of database errors
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeConfiguration
	ErrorTypeConnection
	ErrorTypeTransaction
	ErrorTypeData
	ErrorTypeQuery
	ErrorTypeSchema
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeConfiguration:
		return "configuration"
	case ErrorTypeConnection:
		return "connection"
	case ErrorTypeTransaction:
		return "transaction"
	case ErrorTypeData:
		return "data"
	case ErrorTypeQuery:
		return "query"
	case ErrorTypeSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// DatabaseError provides detailed information about database errors
type DatabaseError struct {
	Type      ErrorType `json:"type"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
	Cause     error     `json:"cause,omitempty"`
	Retryable bool      `json:"retryable"`
}

// Error implements the error interface
func (e *DatabaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause error
func (e *DatabaseError) Unwrap() error {
	return e.Cause
}

// Is matches another DatabaseError of the same type and operation.
func (e *DatabaseError) Is(target error) bool {
	var t *DatabaseError
	if !errors.As(target, &t) {
		return false
	}
	return t.Type == e.Type && (t.Operation == "" || t.Operation == e.Operation)
}

// NewDatabaseError creates a new DatabaseError
func NewDatabaseError(errorType ErrorType, operation, message string, cause error) *DatabaseError {
	return &DatabaseError{
		Type:      errorType,
		Operation: operation,
		Message:   message,
		Cause:     cause,
		Retryable: isRetryableError(errorType, cause),
	}
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeConfiguration, operation, message, cause)
}

// NewConnectionError creates a connection error
func NewConnectionError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeConnection, operation, message, cause)
}

// NewTransactionError creates a transaction error
func NewTransactionError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeTransaction, operation, message, cause)
}

// NewDataError creates a data error
func NewDataError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeData, operation, message, cause)
}

// NewQueryError creates a query error
func NewQueryError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeQuery, operation, message, cause)
}

// NewSchemaError creates a schema error
func NewSchemaError(operation, message string, cause error) *DatabaseError {
	return NewDatabaseError(ErrorTypeSchema, operation, message, cause)
}

// isRetryableError determines if an error is retryable based on its type and cause
func isRetryableError(errorType ErrorType, cause error) bool {
	switch errorType {
	case ErrorTypeConnection:
		return true
	case ErrorTypeTransaction, ErrorTypeQuery:
		if cause == nil {
			return false
		}
		msg := strings.ToLower(cause.Error())
		for _, s := range []string{"deadlock", "timeout", "busy", "locked", "connection"} {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func isType(err error, t ErrorType) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr) && dbErr.Type == t
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool { return isType(err, ErrorTypeConfiguration) }

// IsConnectionError checks if an error is a connection error
func IsConnectionError(err error) bool { return isType(err, ErrorTypeConnection) }

// IsQueryError checks if an error is a query error
func IsQueryError(err error) bool { return isType(err, ErrorTypeQuery) }

// IsSchemaError checks if an error is a schema error
func IsSchemaError(err error) bool { return isType(err, ErrorTypeSchema) }

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr.Retryable
	}
	return false
}

// WrapError wraps an existing error with database error context.
// DatabaseErrors pass through unchanged.
func WrapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return NewDatabaseError(ErrorTypeUnknown, operation, "database operation failed", err)
}
