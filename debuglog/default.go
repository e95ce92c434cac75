package debuglog

import "os"

// std is the process-wide Logger behind the package-level functions. It
// writes to the standard error stream and redirects os.Stderr along with
// its own output.
var std = New(os.Stderr, WithStderrRedirect())

// Default returns the process-wide Logger.
func Default() *Logger { return std }

// SetDebugFile calls Default().SetDebugFile.
func SetDebugFile(path string) error { return std.SetDebugFile(path) }

// CloseDebugFile calls Default().CloseDebugFile.
func CloseDebugFile() error { return std.CloseDebugFile() }

// DebugOn calls Default().DebugOn.
func DebugOn() { std.DebugOn() }

// DebugOff calls Default().DebugOff.
func DebugOff() { std.DebugOff() }

// SetFileAndDebugOn calls Default().SetFileAndDebugOn.
func SetFileAndDebugOn(path string) error { return std.SetFileAndDebugOn(path) }

// CloseFileAndDebugOff calls Default().CloseFileAndDebugOff.
func CloseFileAndDebugOff() error { return std.CloseFileAndDebugOff() }

// DebugPrint calls Default().DebugPrint.
func DebugPrint(msg string) { std.DebugPrint(msg) }

// DebugPrintln calls Default().DebugPrintln.
func DebugPrintln(msg string) { std.DebugPrintln(msg) }

// DebugPrintf calls Default().DebugPrintf.
func DebugPrintf(format string, args ...any) { std.DebugPrintf(format, args...) }

// DebugPrintlnf calls Default().DebugPrintlnf.
func DebugPrintlnf(format string, args ...any) { std.DebugPrintlnf(format, args...) }

// IsDebugging calls Default().IsDebugging.
func IsDebugging() bool { return std.IsDebugging() }

// IsSystemErrRedirected calls Default().IsSystemErrRedirected.
func IsSystemErrRedirected() bool { return std.IsSystemErrRedirected() }

// IncTab calls Default().IncTab.
func IncTab() { std.IncTab() }

// DecTab calls Default().DecTab.
func DecTab() { std.DecTab() }

// SetToAscii calls Default().SetToAscii.
func SetToAscii() { std.SetToAscii() }
