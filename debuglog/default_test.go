package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	orig := os.Stderr
	t.Cleanup(func() {
		_ = CloseFileAndDebugOff()
		os.Stderr = orig
	})

	SetToAscii()
	path := filepath.Join(t.TempDir(), "default.log")
	if err := SetFileAndDebugOn(path); err != nil {
		t.Fatalf("SetFileAndDebugOn failed: %v", err)
	}
	if !IsDebugging() || !IsSystemErrRedirected() {
		t.Fatalf("expected debugging and redirection to be active")
	}

	IncTab()
	DebugPrintlnf("depth %d", Default().Level())
	DecTab()
	DebugPrint("tail")
	DebugPrintln("")

	if err := CloseFileAndDebugOff(); err != nil {
		t.Fatalf("CloseFileAndDebugOff failed: %v", err)
	}
	if IsDebugging() || IsSystemErrRedirected() {
		t.Fatalf("expected debugging and redirection to be inactive")
	}
	if os.Stderr != orig {
		t.Fatalf("expected os.Stderr to be restored")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"|         depth 1\n", "\ntail\n", "NIVEL 1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	if !strings.HasSuffix(out, "|\nNIVEL 0\n----------\n\n") {
		t.Errorf("expected closing frame at end of %q", out)
	}
}
