package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Algorithm names and size limits are exported for reuse in help text.
const (
	AlgorithmPattern = "^[a-z][a-z0-9-]{0,31}$"

	SizeMin      = 0
	SizeMax      = 20
	FibonacciMax = 15
	HanoiMax     = 10
)

var reAlgorithm = regexp.MustCompile(AlgorithmPattern)

// Known demo algorithms.
var Algorithms = []string{"factorial", "fibonacci", "hanoi"}

// Sentinel errors for classification by callers.
var (
	ErrInvalidTracePath = errors.New("invalid trace path")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidSize      = errors.New("invalid size")
)

// ValidateTracePath checks that path can name a trace file: non-empty, not
// a directory, and inside an existing directory.
func ValidateTracePath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidTracePath)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidTracePath, path)
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: directory %s: %w", ErrInvalidTracePath, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidTracePath, dir)
	}
	return nil
}

// ValidateAlgorithm normalizes name and checks it against Algorithms.
func ValidateAlgorithm(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !reAlgorithm.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	for _, a := range Algorithms {
		if a == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms, ", "))
}

// ValidateSize checks the demo input size for algorithm. Trace output of
// fibonacci and hanoi is exponential in n.
func ValidateSize(algorithm string, n int) error {
	limit := SizeMax
	switch algorithm {
	case "fibonacci":
		limit = FibonacciMax
	case "hanoi":
		limit = HanoiMax
	}
	if n < SizeMin || n > limit {
		return fmt.Errorf("%w: %s accepts %d-%d, got %d", ErrInvalidSize, algorithm, SizeMin, limit, n)
	}
	return nil
}
