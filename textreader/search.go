package textreader

import (
	"unicode"
)

// search holds the state of a single GetNext call: the live data, what we
// look for, and where the result goes. Positions at or beyond len(data) are
// past the end and are never dereferenced.
type search struct {
	data []rune
	spec *TokenSpec
	tok  *Token

	// delimited is set when a delimiter ended the token. DelimChar can not
	// tell, since NUL is a valid delimiter.
	delimited bool
}

func (r *search) find() bool {
	switch r.spec.Mode {
	case LiteralMode:
		return r.findLiteral()
	case WhitespaceMode:
		return r.findWhitespace()
	case NonWhitespaceMode:
		return r.findNonWhitespace()
	case DelimitedMode:
		return r.findDelimited()
	case EnclosedMode:
		return r.findEnclosed()
	}
	return false
}

// equal compares two characters, folding lower-case ones to upper case when
// the spec ignores case.
func equal(a, b rune, ignoreCase bool) bool {
	if ignoreCase {
		if unicode.IsLower(a) {
			a = unicode.ToUpper(a)
		}
		if unicode.IsLower(b) {
			b = unicode.ToUpper(b)
		}
	}
	return a == b
}

// halt reports whether the search must stop at pos. Reaching the end of the
// data sets the EOF flag; the search may only go on if EOF counts as a
// delimiter.
func (r *search) halt(pos int) bool {
	if r.spec.MaxChars > 0 && pos >= r.spec.MaxChars {
		return true
	}

	if pos >= len(r.data) {
		r.tok.EOF = true
		return !r.spec.EOFDelim
	}

	for _, c := range r.spec.HaltChars {
		if equal(r.data[pos], c, r.spec.IgnoreCase) {
			r.tok.HaltChar = c
			return true
		}
	}
	return false
}

func (r *search) delim(pos int) bool {
	c := r.data[pos]
	if r.spec.NewLineDelim && (c == '\n' || c == '\r') {
		r.tok.NewLine = true
		r.tok.DelimChar = c
		r.delimited = true
		return true
	}

	for _, d := range r.spec.Delims {
		if equal(c, d, r.spec.IgnoreCase) {
			r.tok.DelimChar = d
			r.delimited = true
			return true
		}
	}
	return false
}

// skipWhitespace returns the position of the first character that is not
// whitespace, or where a halt occurred.
func (r *search) skipWhitespace() int {
	if !r.spec.SkipWhitespace {
		return 0
	}
	for i, c := range r.data {
		if r.halt(i) || !unicode.IsSpace(c) {
			return i
		}
	}
	return len(r.data)
}

// match compares the data at pos against text; the caller makes sure it fits.
func (r *search) match(pos int, text []rune) bool {
	for i, c := range text {
		if !equal(r.data[pos+i], c, r.spec.IgnoreCase) {
			return false
		}
	}
	return true
}

// setToken records data[start:end] as the token.
func (r *search) setToken(start, end int) {
	r.tok.Text = string(r.data[start:end])
	r.tok.Start = start
	r.tok.End = end - 1
}

func (r *search) findLiteral() bool {
	text := []rune(r.spec.Text)
	if len(text) == 0 {
		return false
	}

	pos := r.skipWhitespace()
	if len(text) > len(r.data)-pos {
		return false
	}

	for i := pos; i <= len(r.data)-len(text); i++ {
		if r.halt(i) {
			return false
		}
		if r.match(i, text) {
			r.setToken(i, i+len(text))
			return true
		}
		// the literal must come first unless leading characters are skipped
		if !r.spec.SkipLeading {
			break
		}
	}
	return false
}

func (r *search) findWhitespace() bool {
	pos := 0

	if r.spec.SkipLeading {
		found := false
		for i, c := range r.data {
			if r.halt(i) {
				return false
			}
			if unicode.IsSpace(c) {
				pos = i
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	i := pos
	for ; i < len(r.data); i++ {
		if r.halt(i) || !unicode.IsSpace(r.data[i]) {
			break
		}
	}
	if i == pos {
		return false
	}

	r.setToken(pos, i)
	return true
}

func (r *search) findNonWhitespace() bool {
	pos := r.skipWhitespace()
	if pos >= len(r.data) {
		return false
	}

	i := pos
	for ; i < len(r.data); i++ {
		if r.halt(i) || unicode.IsSpace(r.data[i]) {
			break
		}
	}
	if i == pos {
		return false
	}

	r.setToken(pos, i)
	return true
}

func (r *search) findDelimited() bool {
	pos := r.skipWhitespace()
	if pos >= len(r.data) {
		return false
	}

	for i := pos; i < len(r.data); i++ {
		if r.halt(i) {
			return false
		}
		// empty tokens are valid
		if r.delim(i) {
			r.setToken(pos, i)
			return true
		}
	}

	r.tok.EOF = true
	if r.spec.EOFDelim {
		r.setToken(pos, len(r.data))
		return true
	}
	return false
}

func (r *search) findEnclosed() bool {
	opening, closing := r.spec.bounds()

	pos := r.skipWhitespace()
	if pos >= len(r.data) {
		return false
	}

	i := pos
	for ; i < len(r.data); i++ {
		if r.halt(i) {
			return false
		}
		if equal(r.data[i], opening, r.spec.IgnoreCase) {
			pos = i
			break
		}
	}
	if i >= len(r.data) {
		return false
	}

	for i = pos + 1; i < len(r.data); i++ {
		if r.halt(i) {
			return false
		}
		if !equal(r.data[i], closing, r.spec.IgnoreCase) {
			continue
		}
		if r.spec.AllowEscape && pos < i-1 && r.data[i-1] == '\\' {
			continue
		}

		// empty tokens are valid
		r.setToken(pos+1, i)
		r.tok.DelimChar = r.data[i]
		r.delimited = true
		if r.spec.AllowEscape {
			r.tok.Text = unescape(r.data[pos+1:i], closing, r.spec.IgnoreCase)
		}
		return true
	}
	return false
}

// unescape drops the backslash in front of every escaped closing character.
func unescape(content []rune, closing rune, ignoreCase bool) string {
	out := make([]rune, 0, len(content))
	for i, c := range content {
		if c == '\\' && i+1 < len(content) && equal(content[i+1], closing, ignoreCase) {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
