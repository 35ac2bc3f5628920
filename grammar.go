package textscan

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/vippsas/textscan/textreader"
)

// Rule is one step of a Grammar. Rules without a Name are matched but not
// recorded, which is handy for literal separators.
type Rule struct {
	Name     string
	Spec     textreader.TokenSpec
	Optional bool

	// Repeat applies the rule until it no longer matches.
	Repeat bool
}

// Grammar is an ordered list of rules applied to an input from the front.
type Grammar struct {
	Name  string
	Rules []Rule

	// AllowTrailing accepts input that has data left after the last rule.
	AllowTrailing bool
}

type Field struct {
	Name  string
	Value string

	// Offset of the first character of Value in the input.
	Offset int
}

type Record struct {
	Fields []Field
}

// Get returns the first value recorded for name.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// All returns every value recorded for name, in input order.
func (r Record) All(name string) []string {
	var result []string
	for _, f := range r.Fields {
		if f.Name == name {
			result = append(result, f.Value)
		}
	}
	return result
}

// Map groups the values by field name.
func (r Record) Map() map[string][]string {
	result := make(map[string][]string)
	for _, f := range r.Fields {
		result[f.Name] = append(result[f.Name], f.Value)
	}
	return result
}

// Parse applies the rules of g to input in order. It stops at the first
// rule that is required but does not match and returns what was parsed so
// far together with a ParseError.
func (g Grammar) Parse(logger logrus.FieldLogger, input string) (Record, error) {
	var rec Record
	s := textreader.NewScanner(input)

	for _, rule := range g.Rules {
		spec := rule.Spec
		matched := 0
		for {
			pos := offset(s)
			tok, ok := s.GetNext(&spec)
			if !ok {
				if matched == 0 && !rule.Optional {
					return rec, ParseError{
						Offset:   pos,
						Rule:     rule.Name,
						HaltChar: tok.HaltChar,
						Message:  "expected " + spec.Mode.String() + " token",
					}
				}
				break
			}
			matched++
			if rule.Name != "" {
				rec.Fields = append(rec.Fields, Field{
					Name:   rule.Name,
					Value:  tok.Text,
					Offset: pos + tok.Start,
				})
			}
			// a peek never moves, so repeating it would not end
			if !rule.Repeat || spec.NoExtract {
				break
			}
		}
	}

	rest := s.Remaining()
	if !g.AllowTrailing && strings.TrimFunc(rest, unicode.IsSpace) != "" {
		return rec, ParseError{
			Offset:  offset(s),
			Message: "unexpected trailing data " + quoteShort(rest),
		}
	}

	logger.WithField("grammar", g.Name).Debugf("parsed %d fields, %d characters left", len(rec.Fields), s.EndOfData())
	return rec, nil
}

// ParseLines parses every non-blank line of input as its own record. Errors
// are collected per line and returned together as ParseErrors.
func (g Grammar) ParseLines(logger logrus.FieldLogger, input string) ([]Record, error) {
	var result []Record
	var errs ParseErrors

	for i, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := g.Parse(logger, line)
		if err != nil {
			perr, ok := err.(ParseError)
			if !ok {
				return result, err
			}
			perr.Line = i + 1
			errs.Errors = append(errs.Errors, perr)
			continue
		}
		result = append(result, rec)
	}

	if len(errs.Errors) > 0 {
		logger.WithField("grammar", g.Name).Warnf("%d lines failed to parse", len(errs.Errors))
		return result, errs
	}
	return result, nil
}

func quoteShort(s string) string {
	const limit = 20
	r := []rune(s)
	if len(r) > limit {
		return strconv.Quote(string(r[:limit]) + "...")
	}
	return strconv.Quote(s)
}
