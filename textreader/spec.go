package textreader

// TokenSpec describes what the next call to Scanner.GetNext should search
// for. It is pure configuration; what was found is returned as a Token.
type TokenSpec struct {
	Mode Mode

	// Text is the sequence to locate in LiteralMode.
	Text string

	// Delims terminate a DelimitedMode token. Each rune is one delimiter.
	Delims string

	// HaltChars abort the search with a failure when encountered before
	// a match completes.
	HaltChars string

	// Start and End bound an EnclosedMode token. A zero End means the
	// bounds are symmetric, e.g. quotes.
	Start rune
	End   rune

	IgnoreCase     bool
	SkipWhitespace bool

	// SkipLeading lets LiteralMode scan past non-matching characters and
	// WhitespaceMode skip a non-whitespace prefix. When false the token must
	// start immediately.
	SkipLeading bool

	NewLineDelim bool
	EOFDelim     bool

	// AllowEscape treats a closing character preceded by a backslash as
	// part of an EnclosedMode token.
	AllowEscape bool

	// NoExtract reports the match without consuming it.
	NoExtract bool

	// MaxChars bounds how far a search may look; 0 is unbounded.
	MaxChars int
}

// Literal returns a spec matching text at the start of the data, after
// leading whitespace.
func Literal(text string) TokenSpec {
	return TokenSpec{Mode: LiteralMode, Text: text, SkipWhitespace: true}
}

// Delimited returns a spec for a field terminated by any rune in delims or
// by the end of the data.
func Delimited(delims string) TokenSpec {
	return TokenSpec{Mode: DelimitedMode, Delims: delims, EOFDelim: true}
}

// Enclosed returns a spec for a region bounded by start and end, allowing
// backslash-escaped end characters inside.
func Enclosed(start, end rune) TokenSpec {
	return TokenSpec{Mode: EnclosedMode, Start: start, End: end, SkipWhitespace: true, AllowEscape: true}
}

// Word returns a spec for the next run of non-whitespace.
func Word() TokenSpec {
	return TokenSpec{Mode: NonWhitespaceMode, SkipWhitespace: true}
}

// Space returns a spec for the next run of whitespace.
func Space() TokenSpec {
	return TokenSpec{Mode: WhitespaceMode, SkipLeading: true}
}

func (spec TokenSpec) bounds() (start, end rune) {
	if spec.End == 0 {
		return spec.Start, spec.Start
	}
	return spec.Start, spec.End
}

// Token is the result of a search.
//
// Text, Start and End are only meaningful when the search succeeded. EOF and
// HaltChar are also set on failure, so a caller can tell a forbidden character
// from running out of data.
type Token struct {
	Text string

	// Start and End are offsets into the live data at the time of the search.
	// End is inclusive.
	Start, End int

	// DelimChar is the delimiter that terminated the token. It is 0 both
	// when there was none and when the delimiter was NUL.
	DelimChar rune

	EOF      bool
	NewLine  bool
	HaltChar rune
}

// Len is the number of characters the token covered in the buffer.
func (t Token) Len() int {
	return t.End - t.Start + 1
}
