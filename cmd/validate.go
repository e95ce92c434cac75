package cmd

import (
	"fmt"
	"strings"

	v "tracelog/validate"
)

func validateAlgorithm(s string) (string, error) {
	name, err := v.ValidateAlgorithm(s)
	if err != nil {
		return "", fmt.Errorf("choose one of %s: (%w)", strings.Join(v.Algorithms, ", "), err)
	}
	return name, nil
}

func validateSize(algorithm string, n int) error {
	if err := v.ValidateSize(algorithm, n); err != nil {
		return fmt.Errorf("--n is out of range: (%w)", err)
	}
	return nil
}

func validateTracePath(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", nil
	}
	if err := v.ValidateTracePath(trimmed); err != nil {
		return "", fmt.Errorf("trace file cannot be written: (%w)", err)
	}
	return trimmed, nil
}
