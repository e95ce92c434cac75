package debuglog

// Charset holds the decorative glyphs used for indentation and level framing.
type Charset struct {
	// HTrace fills delimiter lines.
	HTrace rune
	// VTrace starts every indentation unit.
	VTrace rune
	// Up is printed before the label on an opening transition line.
	Up string
	// Down is printed after the label on a closing transition line.
	Down string
	// Label precedes the level number.
	Label string
}

var (
	// UnicodeCharset is the default glyph set.
	UnicodeCharset = Charset{
		HTrace: '▬',
		VTrace: '▌',
		Up:     "▲\n",
		Down:   "\n▼",
		Label:  "NÍVEL ",
	}

	// ASCIICharset is selected by SetToAscii.
	ASCIICharset = Charset{
		HTrace: '-',
		VTrace: '|',
		Up:     "|\n",
		Down:   "\n|",
		Label:  "NIVEL ",
	}
)
