package workflows

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Jenis error terstruktur yang dikembalikan engine ke controller.
const (
	ErrKindNotFound          = "NotFound"
	ErrKindInvalidTransition = "InvalidTransition"
	ErrKindForbidden         = "Forbidden"
	ErrKindValidation        = "ValidationError"
	ErrKindConflict          = "ConflictError"
	ErrKindPersistence       = "PersistenceError"
)

// AppError membawa jenis error + pesan untuk ditampilkan apa adanya ke caller.
type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus memetakan jenis error ke kode HTTP untuk layer controller.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindNotFound:
		return fiber.StatusNotFound
	case ErrKindForbidden:
		return fiber.StatusForbidden
	case ErrKindValidation:
		return fiber.StatusBadRequest
	case ErrKindInvalidTransition, ErrKindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: msg}
}

func InvalidTransition(msg string) *AppError {
	return &AppError{Kind: ErrKindInvalidTransition, Message: msg}
}

func Forbidden(msg string) *AppError {
	return &AppError{Kind: ErrKindForbidden, Message: msg}
}

func Validation(msg string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: msg}
}

func Conflict(msg string) *AppError {
	return &AppError{Kind: ErrKindConflict, Message: msg}
}

// Persistence membungkus error dari store. Unique violation dan serialization
// failure Postgres dinaikkan jadi ConflictError supaya caller tahu transisinya
// kalah balapan, bukan store-nya rusak.
func Persistence(err error) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("data tidak ditemukan")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return Conflict("data duplikat: " + pqErr.Detail)
		case "40001", "55P03": // serialization_failure, lock_not_available
			return Conflict("transaksi bentrok, silakan ulangi")
		}
	}
	return &AppError{Kind: ErrKindPersistence, Message: err.Error()}
}

// AsAppError meng-unwrap *AppError dari error apa pun.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind mengecek jenis error tanpa perlu unwrap manual di call site.
func IsKind(err error, kind string) bool {
	if ae, ok := AsAppError(err); ok {
		return ae.Kind == kind
	}
	return false
}
