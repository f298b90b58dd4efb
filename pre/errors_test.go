package pre

import (
	"errors"
	"fmt"
	"testing"
)

// ------------------------------------------------------------------ errors

func TestErrEmptyLanguageIsComparable(t *testing.T) {
	wrapped := fmt.Errorf("enumerate: %w", ErrEmptyLanguage)
	if !errors.Is(wrapped, ErrEmptyLanguage) {
		t.Fatalf("want errors.Is to see through a wrapped ErrEmptyLanguage")
	}
	var target *EmptyLanguageError
	if !errors.As(ErrEmptyLanguage, &target) {
		t.Fatalf("want ErrEmptyLanguage to satisfy errors.As(*EmptyLanguageError)")
	}
}
