package follow

import (
	"regexp"
	"strings"

	"tracelog/debuglog"

	"github.com/charmbracelet/lipgloss"
)

// LineKind classifies one line of trace output.
type LineKind int

const (
	KindText LineKind = iota
	KindDelimiter
	KindLabel
	KindMarker
)

var (
	charsets = []debuglog.Charset{debuglog.UnicodeCharset, debuglog.ASCIICharset}
	reLabel  = regexp.MustCompile(`^(NÍVEL|NIVEL) [0-9]+$`)
)

// Classify reports what kind of framing line is, ignoring indentation.
func Classify(line string) LineKind {
	_, rest := splitIndent(line)
	if rest == "" {
		return KindText
	}
	if reLabel.MatchString(rest) {
		return KindLabel
	}
	for _, cs := range charsets {
		h := string(cs.HTrace)
		if len([]rune(rest)) >= debuglog.TabLength && strings.Trim(rest, h) == "" {
			return KindDelimiter
		}
		if rest == strings.TrimSpace(cs.Up) || rest == strings.TrimSpace(cs.Down) {
			return KindMarker
		}
	}
	return KindText
}

// splitIndent separates leading indentation units of either charset from
// the rest of line. Trailing spaces are dropped from the rest.
func splitIndent(line string) (indent, rest string) {
	pad := strings.Repeat(" ", debuglog.TabLength-1)
	rest = line
	for {
		trimmed := false
		for _, cs := range charsets {
			unit := string(cs.VTrace) + pad
			if strings.HasPrefix(rest, unit) {
				rest = rest[len(unit):]
				trimmed = true
			}
		}
		if !trimmed {
			break
		}
	}
	indent = line[:len(line)-len(rest)]
	return indent, strings.TrimRight(rest, " ")
}

// Styler highlights framing lines.
type Styler struct {
	delimiter lipgloss.Style
	label     lipgloss.Style
	marker    lipgloss.Style
}

// NewStyler returns the default highlighting scheme.
func NewStyler() *Styler {
	return &Styler{
		delimiter: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render styles line according to its kind. Indentation is kept unstyled.
func (s *Styler) Render(line string) string {
	kind := Classify(line)
	if kind == KindText {
		return line
	}
	indent, body := splitIndent(line)

	switch kind {
	case KindDelimiter:
		return indent + s.delimiter.Render(body)
	case KindLabel:
		return indent + s.label.Render(body)
	default:
		return indent + s.marker.Render(body)
	}
}
