package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("week1", []string{"quantity"}, []string{"sku", "location"})

	if !errors.Is(err, ErrSchema) {
		t.Error("SchemaError should match ErrSchema")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("SchemaError should match ErrInvalidInput")
	}

	msg := err.Error()
	want := "week1: missing required columns: quantity (found: sku, location)"
	if msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("quantity", "oops", "not numeric")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should return true")
	}

	wrapped := fmt.Errorf("cleaning failed: %w", err)
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("wrapped ValidationError should still match ErrInvalidInput")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	underlying := errors.New("disk full")
	err := NewIOError("write", "/tmp/out.csv", underlying)

	if !errors.Is(err, underlying) {
		t.Error("IOError should unwrap to the underlying error")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("errors.As should find IOError")
	}
	if ioErr.Path != "/tmp/out.csv" {
		t.Errorf("Path = %q, want /tmp/out.csv", ioErr.Path)
	}
}

func TestParseErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with file and line",
			err:  &ParseError{Format: "csv", File: "snap.csv", Line: 7, Message: "wrong field count"},
			want: "parse error in csv at snap.csv:7: wrong field count",
		},
		{
			name: "with file only",
			err:  &ParseError{Format: "csv", File: "snap.csv", Message: "empty file"},
			want: "parse error in csv file snap.csv: empty file",
		},
		{
			name: "bare",
			err:  &ParseError{Format: "yaml", Message: "bad indent"},
			want: "yaml parse error: bad indent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapParse("csv", "x", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapValidation("sku", nil) != nil {
		t.Error("WrapValidation(nil) should return nil")
	}

	err := WrapValidation("sku", errors.New("empty"))
	if !IsValidationError(err) {
		t.Error("WrapValidation should produce a validation error")
	}
}
