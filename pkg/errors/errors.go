// Package errors provides structured error handling for the secret-sharing
// core and its CLI. It defines sentinel errors, exit codes, and helpers for
// adding context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes per FR-006.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input
	ExitAuth       = 3 // Authentication failed
	ExitNotFound   = 4 // Resource not found
	ExitPermission = 5 // Permission denied or insufficient funds
)

// SigilError is the structured error type for Sigil.
type SigilError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *SigilError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SigilError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SigilError.
func (e *SigilError) Is(target error) bool {
	var t *SigilError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors for the secret-sharing core (spec error taxonomy).
var (
	ErrGeneral = &SigilError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &SigilError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrConfigNotFound = &SigilError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &SigilError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	// Split-time validation errors.
	ErrThresholdTooSmall = &SigilError{
		Code:     "THRESHOLD_TOO_SMALL",
		Message:  "threshold must be at least 2",
		ExitCode: ExitInput,
	}

	ErrThresholdTooBig = &SigilError{
		Code:     "THRESHOLD_TOO_BIG",
		Message:  "share count must be at least the threshold",
		ExitCode: ExitInput,
	}

	ErrInvalidShareCountMax = &SigilError{
		Code:     "INVALID_SHARE_COUNT_MAX",
		Message:  "share count cannot exceed 255",
		ExitCode: ExitInput,
	}

	ErrEmptySecret = &SigilError{
		Code:     "EMPTY_SECRET",
		Message:  "secret cannot be empty",
		ExitCode: ExitInput,
	}

	ErrSecretTooBig = &SigilError{
		Code:     "SECRET_TOO_BIG",
		Message:  "secret exceeds the maximum supported size",
		ExitCode: ExitInput,
	}

	ErrCannotGenerateRandomNumbers = &SigilError{
		Code:     "CANNOT_GENERATE_RANDOM_NUMBERS",
		Message:  "failed to draw random bytes for the dealing",
		ExitCode: ExitGeneral,
	}

	// Share-text parsing errors.
	ErrShareParsingError = &SigilError{
		Code:     "SHARE_PARSING_ERROR",
		Message:  "share text is malformed",
		ExitCode: ExitInput,
	}

	ErrShareParsingInvalidShareID = &SigilError{
		Code:     "SHARE_PARSING_INVALID_SHARE_ID",
		Message:  "share id must be at least 1",
		ExitCode: ExitInput,
	}

	ErrShareParsingInvalidShareThreshold = &SigilError{
		Code:     "SHARE_PARSING_INVALID_SHARE_THRESHOLD",
		Message:  "share threshold must be at least 2",
		ExitCode: ExitInput,
	}

	ErrShareParsingEmptyShare = &SigilError{
		Code:     "SHARE_PARSING_EMPTY_SHARE",
		Message:  "share payload segment is empty",
		ExitCode: ExitInput,
	}

	// Recovery-time validation errors.
	ErrMissingShares = &SigilError{
		Code:     "MISSING_SHARES",
		Message:  "fewer shares were supplied than the threshold requires",
		ExitCode: ExitInput,
	}

	ErrDuplicateShareID = &SigilError{
		Code:     "DUPLICATE_SHARE_ID",
		Message:  "two supplied shares carry the same share id",
		ExitCode: ExitInput,
	}

	ErrInconsistentThresholds = &SigilError{
		Code:     "INCONSISTENT_THRESHOLDS",
		Message:  "supplied shares disagree on the threshold",
		ExitCode: ExitInput,
	}

	ErrInconsistentSecretLengths = &SigilError{
		Code:     "INCONSISTENT_SECRET_LENGTHS",
		Message:  "supplied shares carry payloads of different lengths",
		ExitCode: ExitInput,
	}

	// Signature-verification errors.
	ErrMissingSignatures = &SigilError{
		Code:     "MISSING_SIGNATURES",
		Message:  "a share is missing its signature pair",
		ExitCode: ExitAuth,
	}

	ErrInconsistentRootHashes = &SigilError{
		Code:     "INCONSISTENT_ROOT_HASHES",
		Message:  "supplied shares were not dealt together under one Merkle root",
		ExitCode: ExitAuth,
	}

	ErrSignatureVerificationFailure = &SigilError{
		Code:     "SIGNATURE_VERIFICATION_FAILURE",
		Message:  "share signature failed verification",
		ExitCode: ExitAuth,
	}

	// Envelope errors.
	ErrSecretDeserializationError = &SigilError{
		Code:     "SECRET_DESERIALIZATION_ERROR",
		Message:  "wrapped secret envelope could not be decoded",
		ExitCode: ExitInput,
	}
)

// New creates a new SigilError with the given code and message.
func New(code, message string) *SigilError {
	return &SigilError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SigilError
	if errors.As(err, &se) {
		return &SigilError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
			ExitCode:   se.ExitCode,
		}
	}

	return &SigilError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SigilError
	if errors.As(err, &se) {
		return &SigilError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SigilError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SigilError
	if errors.As(err, &se) {
		return &SigilError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SigilError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var se *SigilError
	if errors.As(err, &se) {
		return se.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *SigilError
	if errors.As(err, &se) {
		return se.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
