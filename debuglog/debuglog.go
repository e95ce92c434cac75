// Package debuglog traces nested (typically recursive) execution to a text
// stream. Output is gated by an on/off switch, indented by the current
// nesting level and framed by delimiter lines whenever the level changes.
//
// A Logger is safe for use by multiple goroutines, but interleaving traces
// from several goroutines in one Logger produces unreadable output.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// TabLength is the display width of one indentation unit.
const TabLength = 10

// Logger is a debug tracing stream with a nesting level.
type Logger struct {
	mu sync.Mutex

	orig io.Writer
	out  io.Writer
	file *os.File

	redirectStderr bool
	origStderr     *os.File

	errRedirected     bool
	debugging         bool
	lastMsgWasPrintln bool
	level             int
	lines             int
	charset           Charset
}

// Option configures a Logger built by New.
type Option func(*Logger)

// WithCharset selects the decorative glyphs. The default is UnicodeCharset.
func WithCharset(cs Charset) Option {
	return func(l *Logger) {
		l.charset = cs
	}
}

// WithStderrRedirect makes SetDebugFile also point os.Stderr at the debug
// file, and CloseDebugFile restore it.
func WithStderrRedirect() Option {
	return func(l *Logger) {
		l.redirectStderr = true
	}
}

// New returns a disabled Logger at level 0 that writes to w until a debug
// file is set. A nil w discards output.
func New(w io.Writer, opts ...Option) *Logger {
	if w == nil {
		w = io.Discard
	}
	l := &Logger{
		orig:       w,
		out:        w,
		origStderr: os.Stderr,
		charset:    UnicodeCharset,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetDebugFile diverts output to the named file, creating or truncating it.
// It does nothing while a debug file is already set. On error the Logger
// keeps writing to its current destination.
func (l *Logger) SetDebugFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setDebugFile(path)
}

func (l *Logger) setDebugFile(path string) error {
	if l.errRedirected {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open debug file: %w", err)
	}

	l.file = f
	l.out = f
	l.errRedirected = true
	if l.redirectStderr {
		l.origStderr = os.Stderr
		os.Stderr = f
	}
	return nil
}

// CloseDebugFile closes the debug file and restores the original
// destination. It does nothing when no debug file is set. The original
// destination is restored even when closing the file fails.
func (l *Logger) CloseDebugFile() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeDebugFile()
}

func (l *Logger) closeDebugFile() error {
	if !l.errRedirected {
		return nil
	}

	err := l.file.Close()
	if l.redirectStderr {
		os.Stderr = l.origStderr
	}
	l.file = nil
	l.out = l.orig
	l.errRedirected = false

	if err != nil {
		return fmt.Errorf("failed to close debug file: %w", err)
	}
	return nil
}

// DebugOn enables output and prints the opening level frame.
func (l *Logger) DebugOn() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugOn()
}

func (l *Logger) debugOn() {
	if l.debugging {
		return
	}
	l.debugging = true
	l.changeLevel(0, true)
}

// DebugOff prints the closing level frame and disables output.
func (l *Logger) DebugOff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugOff()
}

func (l *Logger) debugOff() {
	if !l.debugging {
		return
	}
	l.changeLevel(0, false)
	l.debugging = false
}

// SetFileAndDebugOn sets the debug file and enables output. Output is
// enabled even when the file cannot be opened; the open error is returned.
func (l *Logger) SetFileAndDebugOn(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.setDebugFile(path)
	l.debugOn()
	return err
}

// CloseFileAndDebugOff disables output and closes the debug file.
func (l *Logger) CloseFileAndDebugOff() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.debugOff()
	return l.closeDebugFile()
}

// DebugPrint writes msg without a trailing line break.
func (l *Logger) DebugPrint(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(msg, false)
}

// DebugPrintln writes msg followed by a line break.
func (l *Logger) DebugPrintln(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(msg, true)
}

// DebugPrintf formats according to a format specifier and writes the result
// like DebugPrint.
func (l *Logger) DebugPrintf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(fmt.Sprintf(format, args...), false)
}

// DebugPrintlnf formats according to a format specifier and writes the
// result like DebugPrintln.
func (l *Logger) DebugPrintlnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(fmt.Sprintf(format, args...), true)
}

// IsDebugging reports whether output is enabled.
func (l *Logger) IsDebugging() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debugging
}

// IsSystemErrRedirected reports whether a debug file is set.
func (l *Logger) IsSystemErrRedirected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errRedirected
}

// Level returns the current nesting level.
func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Lines returns the number of line breaks written since the Logger was created.
func (l *Logger) Lines() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines
}

// IncTab raises the nesting level by one and frames the change.
// It has no effect while output is disabled.
func (l *Logger) IncTab() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.changeLevel(1, false)
}

// DecTab lowers the nesting level by one and frames the change.
// It has no effect at level 0 or while output is disabled.
func (l *Logger) DecTab() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level > 0 {
		l.changeLevel(-1, false)
	}
}

// Trace prints an entry line for name and raises the level. The returned
// function lowers the level and prints the matching exit line:
//
//	defer log.Trace("walk")()
func (l *Logger) Trace(name string) func() {
	l.mu.Lock()
	raised := l.debugging
	l.print("-> "+name, true)
	l.changeLevel(1, false)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if raised && l.level > 0 {
			l.changeLevel(-1, false)
		}
		l.print("<- "+name, true)
	}
}

// SetToAscii switches to ASCIICharset. Text already written is unchanged.
func (l *Logger) SetToAscii() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.charset = ASCIICharset
}

func (l *Logger) tab() string {
	unit := string(l.charset.VTrace) + strings.Repeat(" ", TabLength-1)
	return strings.Repeat(unit, l.level)
}

func (l *Logger) delimiter(level int) string {
	return strings.Repeat(string(l.charset.HTrace), level*TabLength+TabLength)
}

func (l *Logger) write(s string) {
	if s == "" {
		return
	}
	l.lines += strings.Count(s, "\n")
	// Trace output is best effort, like writes to a standard error stream.
	_, _ = io.WriteString(l.out, s)
}

// print writes msg with every embedded line break followed by the current
// indentation, prefixing the indentation when the previous message ended
// a line.
func (l *Logger) print(msg string, newline bool) {
	if !l.debugging {
		return
	}

	var b strings.Builder
	tab := l.tab()
	if l.lastMsgWasPrintln {
		b.WriteString(tab)
	}
	b.WriteString(strings.ReplaceAll(msg, "\n", "\n"+tab))
	if newline {
		b.WriteByte('\n')
	}
	l.write(b.String())
	l.lastMsgWasPrintln = newline
}

// changeLevel applies a level delta of -1, 0 or +1 and frames it. A zero
// delta frames enabling (opening true) or disabling (opening false) output.
func (l *Logger) changeLevel(delta int, opening bool) {
	if !l.debugging {
		return
	}

	change := delta*delta == 1
	label := l.charset.Label

	l.print("", true)
	if change || !opening {
		l.print(l.charset.Up+label+strconv.Itoa(l.level), true)
	}
	l.write(l.delimiter(max(l.level, l.level+delta)) + "\n")
	l.level += delta
	if change || opening {
		l.print(label+strconv.Itoa(l.level)+l.charset.Down, true)
	}
	l.print("", true)
}
