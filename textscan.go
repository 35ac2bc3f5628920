// Package textscan builds on the textreader engine to turn text into
// slices, maps and records.
package textscan

import (
	"github.com/vippsas/textscan/textreader"
)

// Split returns the fields of input separated by any rune in delims. Empty
// fields are kept, except that a trailing delimiter does not produce one.
func Split(input, delims string) []string {
	return collect(textreader.NewScanner(input), textreader.Delimited(delims))
}

// Fields returns the whitespace separated words of input.
func Fields(input string) []string {
	return collect(textreader.NewScanner(input), textreader.Word())
}

// Lines returns the lines of input. \n, \r and \r\n all end a line.
func Lines(input string) []string {
	return collect(textreader.NewScanner(input), lineSpec)
}

var lineSpec = textreader.TokenSpec{
	Mode:         textreader.DelimitedMode,
	NewLineDelim: true,
	EOFDelim:     true,
}

func collect(s *textreader.Scanner, spec textreader.TokenSpec) []string {
	var result []string
	for {
		tok, ok := s.GetNext(&spec)
		if !ok {
			return result
		}
		result = append(result, tok.Text)
	}
}

// offset is how far into the original input the scanner has come.
func offset(s *textreader.Scanner) int {
	return s.Len() - s.EndOfData()
}
