package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined errors for common business cases.

// ErrNotFound converts a repository-level miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists maps a uniqueness violation to 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict builds a domain-specific 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a domain-specific 400.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Photo pipeline ---

// ErrInvalidUpload rejects non-image uploads before any file I/O happens.
func ErrInvalidUpload(message string) *AppError {
	return New(CodeInvalidUpload, "photos", message, http.StatusBadRequest)
}

// ErrUnsupportedImageFormat is raised when the codec cannot decode the bytes.
func ErrUnsupportedImageFormat(err error) *AppError {
	return Wrap(err, CodeUnsupportedFormat, "photos", "Uploaded file is not a decodable image", http.StatusBadRequest)
}

// ErrPhotoQuotaExceeded reports the per-entity photo cap with counts.
func ErrPhotoQuotaExceeded(current, incoming, max int) *AppError {
	return New(CodeQuotaExceeded, "photos",
		fmt.Sprintf("photo limit exceeded: %d existing + %d incoming > %d allowed", current, incoming, max),
		http.StatusBadRequest).
		WithDetails(map[string]int{"current": current, "incoming": incoming, "max": max})
}

// ErrStorageWrite wraps a disk failure during variant persistence. Retryable
// by the caller, never retried internally.
func ErrStorageWrite(err error) *AppError {
	return Wrap(err, CodeStorageError, "photos", "Failed to write image to storage", http.StatusInternalServerError)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
