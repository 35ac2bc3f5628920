package textscan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/smasher164/xid"
	"github.com/vippsas/textscan/textreader"
)

// KeyValues parses pairs such as `host=db1; port = 5432; name="a \"b\""`.
// Pairs are separated by any rune in pairDelims and keys from values by sep.
// Values may be double-quoted, with \" escaping a quote. Keys must be
// identifiers, optionally dotted or dashed (`http.status`, `user-agent`).
// A later pair overrides an earlier one with the same key.
func KeyValues(input, pairDelims string, sep rune) (map[string]string, error) {
	result := make(map[string]string)
	s := textreader.NewScanner(input)

	pairEnd := textreader.TokenSpec{
		Mode:           textreader.DelimitedMode,
		Delims:         pairDelims,
		SkipWhitespace: true,
		EOFDelim:       true,
	}
	key := textreader.TokenSpec{
		Mode:           textreader.DelimitedMode,
		Delims:         string(sep),
		HaltChars:      pairDelims,
		SkipWhitespace: true,
	}
	quote := textreader.Literal(`"`)
	quoted := textreader.Enclosed('"', 0)

	for !s.Exhausted() {
		// nothing but whitespace left, or an empty pair
		tok, ok := s.Peek(pairEnd)
		if !ok {
			break
		}
		if tok.Text == "" {
			_, _ = s.GetNext(&pairEnd)
			continue
		}

		pos := offset(s)
		tok, ok = s.GetNext(&key)
		if !ok {
			return result, ParseError{
				Offset:   pos,
				HaltChar: tok.HaltChar,
				Message:  fmt.Sprintf("expected key followed by %q", sep),
			}
		}
		name := strings.TrimRightFunc(tok.Text, unicode.IsSpace)
		if !isKey(name) {
			return result, ParseError{
				Offset:  pos + tok.Start,
				Message: fmt.Sprintf("invalid key %q", name),
			}
		}

		if _, ok := s.Peek(quote); ok {
			pos = offset(s)
			tok, ok = s.GetNext(&quoted)
			if !ok {
				return result, ParseError{Offset: pos, Rule: name, Message: "unterminated quoted value"}
			}
			result[name] = tok.Text

			pos = offset(s)
			if rest, ok := s.GetNext(&pairEnd); ok && strings.TrimSpace(rest.Text) != "" {
				return result, ParseError{
					Offset:  pos + rest.Start,
					Rule:    name,
					Message: fmt.Sprintf("unexpected %q after quoted value", rest.Text),
				}
			}
			continue
		}

		// a key at the very end has an empty value
		value := ""
		if tok, ok := s.GetNext(&pairEnd); ok {
			value = strings.TrimRightFunc(tok.Text, unicode.IsSpace)
		}
		result[name] = value
	}
	return result, nil
}

func isKey(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case i == 0 && (xid.Start(r) || r == '_'):
		case i > 0 && (xid.Continue(r) || r == '.' || r == '-'):
		default:
			return false
		}
	}
	return true
}
