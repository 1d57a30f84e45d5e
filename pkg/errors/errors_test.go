package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

var (
	errInner     = errors.New("inner")
	errRootCause = errors.New("root cause")
	errPlain     = errors.New("plain error")
	errPlainCode = errors.New("plain")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, sigilerr.ExitSuccess},
		{"general error", sigilerr.ErrGeneral, sigilerr.ExitGeneral},
		{"invalid input", sigilerr.ErrInvalidInput, sigilerr.ExitInput},
		{"threshold too small", sigilerr.ErrThresholdTooSmall, sigilerr.ExitInput},
		{"threshold too big", sigilerr.ErrThresholdTooBig, sigilerr.ExitInput},
		{"missing signatures", sigilerr.ErrMissingSignatures, sigilerr.ExitAuth},
		{"inconsistent root hashes", sigilerr.ErrInconsistentRootHashes, sigilerr.ExitAuth},
		{"signature verification failure", sigilerr.ErrSignatureVerificationFailure, sigilerr.ExitAuth},
		{"config not found", sigilerr.ErrConfigNotFound, sigilerr.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code := sigilerr.ExitCode(tt.err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestExitCodeWrappedError(t *testing.T) {
	t.Parallel()
	wrapped := sigilerr.Wrap(sigilerr.ErrConfigNotFound, "loading config")
	code := sigilerr.ExitCode(wrapped)
	assert.Equal(t, sigilerr.ExitNotFound, code)
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	// Verify that wrapping preserves error identity
	wrapped := sigilerr.Wrap(sigilerr.ErrGeneral, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrGeneral)

	wrapped = sigilerr.Wrap(sigilerr.ErrInvalidInput, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrInvalidInput)

	wrapped = sigilerr.Wrap(sigilerr.ErrThresholdTooSmall, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrThresholdTooSmall)

	wrapped = sigilerr.Wrap(sigilerr.ErrThresholdTooBig, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrThresholdTooBig)

	wrapped = sigilerr.Wrap(sigilerr.ErrMissingShares, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrMissingShares)

	wrapped = sigilerr.Wrap(sigilerr.ErrInconsistentRootHashes, "wrapped")
	require.ErrorIs(t, wrapped, sigilerr.ErrInconsistentRootHashes)
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		expected string
	}{
		{sigilerr.ErrGeneral, "GENERAL_ERROR"},
		{sigilerr.ErrInvalidInput, "INVALID_INPUT"},
		{sigilerr.ErrThresholdTooSmall, "THRESHOLD_TOO_SMALL"},
		{sigilerr.ErrThresholdTooBig, "THRESHOLD_TOO_BIG"},
		{sigilerr.ErrInvalidShareCountMax, "INVALID_SHARE_COUNT_MAX"},
		{sigilerr.ErrEmptySecret, "EMPTY_SECRET"},
		{sigilerr.ErrSecretTooBig, "SECRET_TOO_BIG"},
		{sigilerr.ErrCannotGenerateRandomNumbers, "CANNOT_GENERATE_RANDOM_NUMBERS"},
		{sigilerr.ErrShareParsingError, "SHARE_PARSING_ERROR"},
		{sigilerr.ErrShareParsingInvalidShareID, "SHARE_PARSING_INVALID_SHARE_ID"},
		{sigilerr.ErrShareParsingInvalidShareThreshold, "SHARE_PARSING_INVALID_SHARE_THRESHOLD"},
		{sigilerr.ErrShareParsingEmptyShare, "SHARE_PARSING_EMPTY_SHARE"},
		{sigilerr.ErrMissingShares, "MISSING_SHARES"},
		{sigilerr.ErrDuplicateShareID, "DUPLICATE_SHARE_ID"},
		{sigilerr.ErrInconsistentThresholds, "INCONSISTENT_THRESHOLDS"},
		{sigilerr.ErrInconsistentSecretLengths, "INCONSISTENT_SECRET_LENGTHS"},
		{sigilerr.ErrMissingSignatures, "MISSING_SIGNATURES"},
		{sigilerr.ErrInconsistentRootHashes, "INCONSISTENT_ROOT_HASHES"},
		{sigilerr.ErrSignatureVerificationFailure, "SIGNATURE_VERIFICATION_FAILURE"},
		{sigilerr.ErrSecretDeserializationError, "SECRET_DESERIALIZATION_ERROR"},
		{sigilerr.ErrConfigNotFound, "CONFIG_NOT_FOUND"},
		{sigilerr.ErrConfigInvalid, "CONFIG_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			var se *sigilerr.SigilError
			require.ErrorAs(t, tt.err, &se)
			assert.Equal(t, tt.expected, se.Code)
		})
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()
	details := map[string]string{
		"threshold": "3",
		"shares":    "2",
	}

	err := sigilerr.WithDetails(sigilerr.ErrThresholdTooBig, details)

	var se *sigilerr.SigilError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()
	suggestion := "check the share separator is '-'"
	err := sigilerr.WithSuggestion(sigilerr.ErrShareParsingError, suggestion)

	var se *sigilerr.SigilError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWithDetailsAndSuggestion(t *testing.T) {
	t.Parallel()
	details := map[string]string{"key": "value"}
	suggestion := "Try this instead"

	err := sigilerr.WithDetails(sigilerr.ErrGeneral, details)
	err = sigilerr.WithSuggestion(err, suggestion)

	var se *sigilerr.SigilError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWrap(t *testing.T) {
	t.Parallel()
	wrapped := sigilerr.Wrap(sigilerr.ErrMissingShares, "share %d", 2)
	assert.Contains(t, wrapped.Error(), "share 2")
	assert.ErrorIs(t, wrapped, sigilerr.ErrMissingShares)
}

func TestNew(t *testing.T) {
	t.Parallel()
	err := sigilerr.New("CUSTOM_ERROR", "custom error message")
	assert.Equal(t, "custom error message", err.Error())

	var se *sigilerr.SigilError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "CUSTOM_ERROR", se.Code)
}

func TestSigilError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{Code: "TEST", Message: "something failed"}
		assert.Equal(t, "something failed", err.Error())
	})

	t.Run("with details sorted", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{
			Code:    "TEST",
			Message: "failed",
			Details: map[string]string{"beta": "2", "alpha": "1"},
		}
		assert.Equal(t, "failed (alpha: 1) (beta: 2)", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{
			Code:    "TEST",
			Message: "outer",
			Cause:   errInner,
		}
		assert.Equal(t, "outer: inner", err.Error())
	})

	t.Run("with details and cause", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{
			Code:    "TEST",
			Message: "outer",
			Details: map[string]string{"key": "val"},
			Cause:   errInner,
		}
		assert.Equal(t, "outer (key: val): inner", err.Error())
	})
}

func TestSigilError_Error_deterministic(t *testing.T) {
	t.Parallel()
	err := &sigilerr.SigilError{
		Code:    "TEST",
		Message: "msg",
		Details: map[string]string{
			"charlie": "3",
			"alpha":   "1",
			"bravo":   "2",
			"delta":   "4",
		},
	}
	first := err.Error()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, err.Error(), "Error() output must be deterministic (iteration %d)", i)
	}
}

func TestSigilError_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{Code: "TEST", Message: "wrapper", Cause: errRootCause}
		assert.Equal(t, errRootCause, err.Unwrap())
	})

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()
		err := &sigilerr.SigilError{Code: "TEST", Message: "no cause"}
		assert.NoError(t, err.Unwrap())
	})
}

func TestSigilError_Is(t *testing.T) {
	t.Parallel()

	t.Run("matching code", func(t *testing.T) {
		t.Parallel()
		a := &sigilerr.SigilError{Code: "SAME_CODE", Message: "a"}
		b := &sigilerr.SigilError{Code: "SAME_CODE", Message: "b"}
		assert.True(t, a.Is(b))
	})

	t.Run("different code", func(t *testing.T) {
		t.Parallel()
		a := &sigilerr.SigilError{Code: "CODE_A", Message: "a"}
		b := &sigilerr.SigilError{Code: "CODE_B", Message: "b"}
		assert.False(t, a.Is(b))
	})

	t.Run("non-SigilError target", func(t *testing.T) {
		t.Parallel()
		a := &sigilerr.SigilError{Code: "TEST", Message: "a"}
		assert.False(t, a.Is(errPlain))
	})
}

func TestAs(t *testing.T) {
	t.Parallel()

	t.Run("SigilError target", func(t *testing.T) {
		t.Parallel()
		err := sigilerr.Wrap(sigilerr.ErrMissingShares, "wrapped")
		var se *sigilerr.SigilError
		assert.True(t, sigilerr.As(err, &se))
		assert.Equal(t, "MISSING_SHARES", se.Code)
	})

	t.Run("non-SigilError", func(t *testing.T) {
		t.Parallel()
		var se *sigilerr.SigilError
		assert.False(t, sigilerr.As(errPlain, &se))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	t.Run("matching sentinel", func(t *testing.T) {
		t.Parallel()
		wrapped := sigilerr.Wrap(sigilerr.ErrMissingShares, "context")
		assert.True(t, sigilerr.Is(wrapped, sigilerr.ErrMissingShares))
	})

	t.Run("non-matching", func(t *testing.T) {
		t.Parallel()
		wrapped := sigilerr.Wrap(sigilerr.ErrMissingShares, "context")
		assert.False(t, sigilerr.Is(wrapped, sigilerr.ErrDuplicateShareID))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, sigilerr.Is(nil, sigilerr.ErrGeneral))
	})
}

func TestCode_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("SigilError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "MISSING_SHARES", sigilerr.Code(sigilerr.ErrMissingShares))
	})

	t.Run("non-SigilError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", sigilerr.Code(errPlainCode))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", sigilerr.Code(nil))
	})
}

func TestWrap_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, sigilerr.Wrap(nil, "context"))
	})

	t.Run("non-SigilError", func(t *testing.T) {
		t.Parallel()
		wrapped := sigilerr.Wrap(errPlain, "context")
		var se *sigilerr.SigilError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "context", se.Message)
		assert.Equal(t, errPlain, se.Cause)
	})

	t.Run("format args", func(t *testing.T) {
		t.Parallel()
		wrapped := sigilerr.Wrap(sigilerr.ErrMissingShares, "share %s index %d", "main", 0)
		assert.Contains(t, wrapped.Error(), "share main index 0")
	})

	t.Run("field preservation", func(t *testing.T) {
		t.Parallel()
		original := sigilerr.WithDetails(sigilerr.ErrMissingShares, map[string]string{"key": "val"})
		original = sigilerr.WithSuggestion(original, "try this")
		wrapped := sigilerr.Wrap(original, "context")

		var se *sigilerr.SigilError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "MISSING_SHARES", se.Code)
		assert.Equal(t, map[string]string{"key": "val"}, se.Details)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, sigilerr.ExitInput, se.ExitCode)
	})
}

func TestWithDetails_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, sigilerr.WithDetails(nil, map[string]string{"k": "v"}))
	})

	t.Run("non-SigilError input", func(t *testing.T) {
		t.Parallel()
		result := sigilerr.WithDetails(errPlain, map[string]string{"k": "v"})
		var se *sigilerr.SigilError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, map[string]string{"k": "v"}, se.Details)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestWithSuggestion_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, sigilerr.WithSuggestion(nil, "suggestion"))
	})

	t.Run("non-SigilError input", func(t *testing.T) {
		t.Parallel()
		result := sigilerr.WithSuggestion(errPlain, "try this")
		var se *sigilerr.SigilError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestExitCode_nonSigilError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, sigilerr.ExitGeneral, sigilerr.ExitCode(errPlain))
}
