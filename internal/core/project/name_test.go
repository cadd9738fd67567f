package project

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my-app", "my-app"},
		{"  padded  ", "padded"},
		{"café", "café"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{"my-app", nil},
		{"My App", nil},
		{"", ErrEmptyProjectName},
		{".", ErrInvalidProjectName},
		{"..", ErrInvalidProjectName},
		{"nested/app", ErrInvalidProjectName},
		{`win\app`, ErrInvalidProjectName},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("ValidateName(%q) error = %v, want nil", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateName(%q) error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}
