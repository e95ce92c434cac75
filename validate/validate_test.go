package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateTracePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"new file in existing dir", filepath.Join(dir, "trace.log"), false},
		{"existing file", file, false},
		{"empty", "  ", true},
		{"directory", dir, true},
		{"missing parent", filepath.Join(dir, "missing", "trace.log"), true},
		{"parent is a file", filepath.Join(file, "trace.log"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracePath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTracePath) {
					t.Fatalf("expected ErrInvalidTracePath for %q, got %v", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.path, err)
			}
		})
	}
}

func TestValidateAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"factorial", "factorial", false},
		{" Hanoi ", "hanoi", false},
		{"FIBONACCI", "fibonacci", false},
		{"quicksort", "", true},
		{"", "", true},
		{"fact orial", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateAlgorithm(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAlgorithm) {
					t.Fatalf("expected ErrUnknownAlgorithm for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		algorithm string
		n         int
		wantErr   bool
	}{
		{"factorial", 0, false},
		{"factorial", 20, false},
		{"factorial", 21, true},
		{"factorial", -1, true},
		{"fibonacci", 15, false},
		{"fibonacci", 16, true},
		{"hanoi", 10, false},
		{"hanoi", 11, true},
	}

	for _, tt := range tests {
		err := ValidateSize(tt.algorithm, tt.n)
		if tt.wantErr && !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%s(%d): expected ErrInvalidSize, got %v", tt.algorithm, tt.n, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s(%d): unexpected error %v", tt.algorithm, tt.n, err)
		}
	}
}
