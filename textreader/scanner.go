package textreader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/vippsas/textscan/textreader/internal/utils"
	"golang.org/x/text/encoding"
)

// Scanner owns a copy of the input and hands it out token by token. Every
// extracting match removes the token and its delimiter from the front of the
// live data, so the Scanner only ever shrinks.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	buf       []rune
	length    int // capacity at construction
	endOfData int // buf[:endOfData] is live
}

// NewScanner returns a Scanner over a copy of input.
func NewScanner(input string) *Scanner {
	buf := []rune(input)
	return &Scanner{
		buf:       buf,
		length:    len(buf),
		endOfData: len(buf),
	}
}

// NewScannerBytes returns a Scanner over narrow input. If n is negative the
// input ends at the first NUL byte (or at len(b)), otherwise only the first n
// bytes are used. A nil decoder means b is UTF-8.
//
// If the input can not be decoded the returned Scanner is empty, so callers
// that ignore the error simply see no data.
func NewScannerBytes(b []byte, n int, dec *encoding.Decoder) (*Scanner, error) {
	if n < 0 {
		n = bytes.IndexByte(b, 0)
		if n < 0 {
			n = len(b)
		}
	}
	if n > len(b) {
		panic("assertion failed: length exceeds input")
	}
	b = b[:n]

	if dec == nil {
		if !utf8.Valid(b) {
			return &Scanner{}, errors.New("textreader: input is not valid UTF-8")
		}
		return NewScanner(string(b)), nil
	}

	decoded, err := dec.Bytes(b)
	if err != nil {
		return &Scanner{}, fmt.Errorf("textreader: decoding input: %w", err)
	}
	return NewScanner(string(decoded)), nil
}

// NewScannerUTF16 returns a Scanner over wide input. If n is negative the
// input ends at the first zero unit (or at len(w)).
func NewScannerUTF16(w []uint16, n int) *Scanner {
	if n < 0 {
		n = len(w)
		for i, u := range w {
			if u == 0 {
				n = i
				break
			}
		}
	}
	if n > len(w) {
		panic("assertion failed: length exceeds input")
	}
	buf := utf16.Decode(w[:n])
	return &Scanner{
		buf:       buf,
		length:    len(buf),
		endOfData: len(buf),
	}
}

// EndOfData is the number of characters not yet consumed.
func (s *Scanner) EndOfData() int {
	return s.endOfData
}

// Len is the number of characters the Scanner was constructed with.
func (s *Scanner) Len() int {
	return s.length
}

func (s *Scanner) Exhausted() bool {
	return s.endOfData == 0
}

// Remaining returns the live data.
func (s *Scanner) Remaining() string {
	return string(s.buf[:s.endOfData])
}

// GetNext searches the live data for the token described by spec. On
// success the token, and the delimiter that ended it, are removed from the
// front of the data unless spec.NoExtract is set.
//
// The bool result reports whether a token was found; the Token's Text,
// Start and End are only meaningful when it is true.
func (s *Scanner) GetNext(spec *TokenSpec) (Token, bool) {
	var tok Token
	if s.endOfData > s.length {
		panic("assertion failed: end of data beyond buffer")
	}

	// no more data to get
	if s.endOfData == 0 {
		tok.EOF = true
		return tok, false
	}

	r := search{
		data: s.buf[:s.endOfData],
		spec: spec,
		tok:  &tok,
	}
	if !r.find() {
		return tok, false
	}
	if spec.NoExtract {
		return tok, true
	}

	n := tok.Start + tok.Len()
	switch {
	case tok.NewLine:
		// a \r\n pair is one delimiter
		if s.buf[n] == '\r' && n+1 < s.endOfData && s.buf[n+1] == '\n' {
			n += 2
		} else {
			n++
		}
	case r.delimited:
		n++
	}
	s.consume(n)

	if s.endOfData == 0 {
		tok.EOF = true
	}
	return tok, true
}

// Peek is GetNext without extraction.
func (s *Scanner) Peek(spec TokenSpec) (Token, bool) {
	spec.NoExtract = true
	return s.GetNext(&spec)
}

// consume drops the first n live characters, moving the rest to the front.
func (s *Scanner) consume(n int) {
	if n < 0 || n > s.endOfData {
		panic("assertion failed: consuming past end of data")
	}
	left := copy(s.buf, s.buf[n:s.endOfData])
	clear(s.buf[left:s.endOfData])
	utils.DPrint("consumed %d characters, %d left\n", n, left)
	s.endOfData = left
}
