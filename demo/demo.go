// Package demo runs small recursive algorithms that narrate themselves
// through a tracer, one indentation level per recursive call.
package demo

import (
	"fmt"

	"tracelog/validate"
)

// Tracer is the part of *debuglog.Logger the algorithms use.
type Tracer interface {
	DebugPrintln(msg string)
	DebugPrintlnf(format string, args ...any)
	IncTab()
	DecTab()
}

// Run validates algorithm and n, runs it against t and returns the result as text.
func Run(t Tracer, algorithm string, n int) (string, error) {
	name, err := validate.ValidateAlgorithm(algorithm)
	if err != nil {
		return "", err
	}
	if err := validate.ValidateSize(name, n); err != nil {
		return "", err
	}

	switch name {
	case "factorial":
		return fmt.Sprintf("%d", Factorial(t, n)), nil
	case "fibonacci":
		return fmt.Sprintf("%d", Fibonacci(t, n)), nil
	case "hanoi":
		return fmt.Sprintf("%d moves", Hanoi(t, n, "A", "C", "B")), nil
	default:
		return "", fmt.Errorf("%w: %q", validate.ErrUnknownAlgorithm, name)
	}
}

// descend runs fn one level deeper.
func descend[T any](t Tracer, fn func() T) T {
	t.IncTab()
	defer t.DecTab()
	return fn()
}

// Factorial computes n! recursively.
func Factorial(t Tracer, n int) uint64 {
	t.DebugPrintlnf("factorial(%d)", n)
	if n <= 1 {
		t.DebugPrintln("base case: 1")
		return 1
	}
	sub := descend(t, func() uint64 { return Factorial(t, n-1) })
	r := uint64(n) * sub
	t.DebugPrintlnf("%d * %d = %d", n, sub, r)
	return r
}

// Fibonacci computes the nth Fibonacci number with the naive double recursion.
func Fibonacci(t Tracer, n int) int {
	t.DebugPrintlnf("fibonacci(%d)", n)
	if n < 2 {
		t.DebugPrintlnf("base case: %d", n)
		return n
	}
	a := descend(t, func() int { return Fibonacci(t, n-1) })
	b := descend(t, func() int { return Fibonacci(t, n-2) })
	t.DebugPrintlnf("%d + %d = %d", a, b, a+b)
	return a + b
}

// Hanoi moves n disks from peg from to peg to using via and returns the
// number of moves.
func Hanoi(t Tracer, n int, from, to, via string) int {
	t.DebugPrintlnf("hanoi(%d, %s -> %s via %s)", n, from, to, via)
	if n == 0 {
		return 0
	}
	moves := descend(t, func() int { return Hanoi(t, n-1, from, via, to) })
	t.DebugPrintlnf("move disk %d: %s -> %s", n, from, to)
	moves++
	moves += descend(t, func() int { return Hanoi(t, n-1, via, to, from) })
	return moves
}
