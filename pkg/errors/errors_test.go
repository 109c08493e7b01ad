package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidVariant, "unknown variant: %s", "neon")

	if err.Code != ErrCodeInvalidVariant {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidVariant)
	}

	if err.Message != "unknown variant: neon" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown variant: neon")
	}

	expected := "INVALID_VARIANT: unknown variant: neon"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeCache, cause, "redis get failed")

	if err.Code != ErrCodeCache {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeCache)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidMode, "test"),
			code:     ErrCodeInvalidMode,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidMode, "test"),
			code:     ErrCodeCache,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeCache, New(ErrCodeInvalidMode, "inner"), "outer"),
			code:     ErrCodeCache,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidMode,
			expected: false,
		},
		{
			name:     "fmt-wrapped Error",
			err:      fmt.Errorf("context: %w", New(ErrCodeNotFound, "missing")),
			code:     ErrCodeNotFound,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeInvalidFormat, "bad")); code != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %v, want %v", code, ErrCodeInvalidFormat)
	}
	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode for plain error = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	if msg := UserMessage(New(ErrCodeInternal, "something broke")); msg != "something broke" {
		t.Errorf("UserMessage = %q, want %q", msg, "something broke")
	}
	if msg := UserMessage(errors.New("plain")); msg != "plain" {
		t.Errorf("UserMessage for plain error = %q, want %q", msg, "plain")
	}
}
