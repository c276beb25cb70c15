// Package common defines shared constants and sentinel errors used across
// HeirVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrorAlreadyExists   = errors.New("already exists")
	ErrIndexInconsistent = errors.New("index inconsistency detected")
	ErrorSerialization   = errors.New("serialization error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Lifecycle errors.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("operation not allowed in current status")
	ErrConditionsNotMet  = errors.New("unlock conditions not met")

	// Allocator / membership errors.
	ErrSharesExhausted = errors.New("no share index available")
	ErrInviteNotActive = errors.New("invite token is not pending")
	ErrInviteExpired   = errors.New("invite token expired")

	// Quota / threshold errors.
	ErrQuotaExceeded         = errors.New("storage quota exceeded")
	ErrDownloadLimitExceeded = errors.New("daily download limit exceeded")

	// Upload assembler errors.
	ErrChunkOutOfOrder  = errors.New("chunk out of order")
	ErrChunkSize        = errors.New("unexpected chunk size")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrUploadIncomplete = errors.New("upload incomplete")

	// Payment gate errors.
	ErrSessionExpired    = errors.New("payment session expired")
	ErrSessionTerminal   = errors.New("payment session already finished")
	ErrPaymentNotFound   = errors.New("matching payment not found")
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
