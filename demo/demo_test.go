package demo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"tracelog/debuglog"
	"tracelog/validate"
)

type countingTracer struct {
	lines    []string
	level    int
	maxLevel int
}

func (c *countingTracer) DebugPrintln(msg string) {
	c.lines = append(c.lines, strings.Repeat("  ", c.level)+msg)
}

func (c *countingTracer) DebugPrintlnf(format string, args ...any) {
	c.DebugPrintln(fmt.Sprintf(format, args...))
}

func (c *countingTracer) IncTab() {
	c.level++
	c.maxLevel = max(c.maxLevel, c.level)
}

func (c *countingTracer) DecTab() {
	if c.level > 0 {
		c.level--
	}
}

func TestRunResults(t *testing.T) {
	tests := []struct {
		algorithm string
		n         int
		want      string
		maxLevel  int
	}{
		{"factorial", 0, "1", 0},
		{"factorial", 5, "120", 4},
		{"factorial", 20, "2432902008176640000", 19},
		{"fibonacci", 0, "0", 0},
		{"fibonacci", 10, "55", 9},
		{"hanoi", 0, "0 moves", 0},
		{"hanoi", 3, "7 moves", 3},
		{"Hanoi", 5, "31 moves", 5},
	}

	for _, tt := range tests {
		tr := &countingTracer{}
		got, err := Run(tr, tt.algorithm, tt.n)
		if err != nil {
			t.Fatalf("%s(%d): unexpected error %v", tt.algorithm, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("%s(%d) = %q, want %q", tt.algorithm, tt.n, got, tt.want)
		}
		if tr.level != 0 {
			t.Errorf("%s(%d): level not restored, got %d", tt.algorithm, tt.n, tr.level)
		}
		if tr.maxLevel != tt.maxLevel {
			t.Errorf("%s(%d): max level %d, want %d", tt.algorithm, tt.n, tr.maxLevel, tt.maxLevel)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tr := &countingTracer{}
	if _, err := Run(tr, "quicksort", 3); !errors.Is(err, validate.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := Run(tr, "hanoi", 11); !errors.Is(err, validate.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if len(tr.lines) != 0 {
		t.Fatalf("expected no trace output for rejected input, got %v", tr.lines)
	}
}

func TestFactorialTraceShape(t *testing.T) {
	tr := &countingTracer{}
	Factorial(tr, 3)

	want := []string{
		"factorial(3)",
		"  factorial(2)",
		"    factorial(1)",
		"    base case: 1",
		"  2 * 1 = 2",
		"3 * 2 = 6",
	}
	if strings.Join(tr.lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected trace:\n%s", strings.Join(tr.lines, "\n"))
	}
}

func TestRunWithDebugLog(t *testing.T) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.WithCharset(debuglog.ASCIICharset))
	l.DebugOn()
	got, err := Run(l, "factorial", 2)
	l.DebugOff()
	if err != nil {
		t.Fatal(err)
	}
	if got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
	if l.Level() != 0 {
		t.Fatalf("expected level 0 after run, got %d", l.Level())
	}

	out := buf.String()
	for _, want := range []string{"factorial(2)\n", "|         factorial(1)\n", "|         base case: 1\n", "2 * 1 = 2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in trace:\n%s", want, out)
		}
	}
	if strings.Count(out, strings.Repeat("-", 20)+"\n") != 2 {
		t.Errorf("expected one level-1 frame in and one out:\n%s", out)
	}
}
