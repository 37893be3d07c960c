// Package apperror holds the typed errors that services return and
// handlers translate into HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError input ไม่ถูกต้อง (400)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError entity ที่อ้างถึงไม่มีอยู่ (404)
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NotFound(entity string, id fmt.Stringer) error {
	nf := &NotFoundError{Entity: entity}
	if id != nil {
		nf.ID = id.String()
	}
	return nf
}

// BackingStoreError store (postgres, object storage) ล้มเหลว (500)
type BackingStoreError struct {
	Op  string
	Err error
}

func (e *BackingStoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackingStoreError) Unwrap() error { return e.Err }

// Store wraps err as a BackingStoreError; nil stays nil and typed
// errors pass through untouched.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		v  *ValidationError
		nf *NotFoundError
		pw *PartialWriteError
		bs *BackingStoreError
	)
	if errors.As(err, &v) || errors.As(err, &nf) || errors.As(err, &pw) || errors.As(err, &bs) {
		return err
	}
	return &BackingStoreError{Op: op, Err: err}
}

// PartialWriteError write หลายขั้นตอนล้มเหลวกลางทาง
// Compensated = true ถ้าลบแถวที่เขียนไปแล้วสำเร็จ
type PartialWriteError struct {
	Op          string
	Err         error
	Compensated bool
}

func (e *PartialWriteError) Error() string {
	if e.Compensated {
		return fmt.Sprintf("%s failed and was rolled back: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed, earlier writes may remain: %v", e.Op, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
