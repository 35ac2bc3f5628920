package textscan

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vippsas/textscan/textreader"
	"gopkg.in/yaml.v3"
)

// SpecConfig is the configuration file form of a textreader.TokenSpec.
// Start and End are written as one-character strings.
type SpecConfig struct {
	Mode           textreader.Mode `yaml:"mode"`
	Text           string          `yaml:"text"`
	Delims         string          `yaml:"delims"`
	Halt           string          `yaml:"halt"`
	Start          string          `yaml:"start"`
	End            string          `yaml:"end"`
	IgnoreCase     bool            `yaml:"ignorecase"`
	SkipWhitespace bool            `yaml:"skipwhitespace"`
	SkipLeading    bool            `yaml:"skipleading"`
	NewLineDelim   bool            `yaml:"newlinedelim"`
	EOFDelim       bool            `yaml:"eofdelim"`
	AllowEscape    bool            `yaml:"allowescape"`
	NoExtract      bool            `yaml:"noextract"`
	MaxChars       int             `yaml:"maxchars"`
}

type RuleConfig struct {
	Name     string     `yaml:"name"`
	Spec     SpecConfig `yaml:"spec"`
	Optional bool       `yaml:"optional"`
	Repeat   bool       `yaml:"repeat"`
}

type GrammarConfig struct {
	AllowTrailing bool         `yaml:"allowtrailing"`
	Rules         []RuleConfig `yaml:"rules"`
}

type Config struct {
	Grammars map[string]GrammarConfig `yaml:"grammars"`
}

// TokenSpec validates c and converts it.
func (c SpecConfig) TokenSpec() (textreader.TokenSpec, error) {
	start, err := SingleRune("start", c.Start)
	if err != nil {
		return textreader.TokenSpec{}, err
	}
	end, err := SingleRune("end", c.End)
	if err != nil {
		return textreader.TokenSpec{}, err
	}

	switch c.Mode {
	case textreader.LiteralMode:
		if c.Text == "" {
			return textreader.TokenSpec{}, fmt.Errorf("literal spec needs a text")
		}
	case textreader.EnclosedMode:
		if start == 0 {
			return textreader.TokenSpec{}, fmt.Errorf("enclosed spec needs a start character")
		}
	case textreader.WhitespaceMode, textreader.NonWhitespaceMode, textreader.DelimitedMode:
	default:
		return textreader.TokenSpec{}, fmt.Errorf("missing or unknown mode")
	}
	if c.MaxChars < 0 {
		return textreader.TokenSpec{}, fmt.Errorf("maxchars cannot be negative")
	}

	return textreader.TokenSpec{
		Mode:           c.Mode,
		Text:           c.Text,
		Delims:         c.Delims,
		HaltChars:      c.Halt,
		Start:          start,
		End:            end,
		IgnoreCase:     c.IgnoreCase,
		SkipWhitespace: c.SkipWhitespace,
		SkipLeading:    c.SkipLeading,
		NewLineDelim:   c.NewLineDelim,
		EOFDelim:       c.EOFDelim,
		AllowEscape:    c.AllowEscape,
		NoExtract:      c.NoExtract,
		MaxChars:       c.MaxChars,
	}, nil
}

// SingleRune decodes s as exactly one character. An empty s gives 0; field
// names the setting in the error.
func SingleRune(field, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%s must be a single character, got %q", field, s)
	}
	return r, nil
}

// ParseConfig reads a configuration file and returns its grammars by name.
func ParseConfig(data []byte) (map[string]Grammar, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg.Grammars))
	for name := range cfg.Grammars {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]Grammar, len(names))
	for _, name := range names {
		gc := cfg.Grammars[name]
		g := Grammar{Name: name, AllowTrailing: gc.AllowTrailing}
		if len(gc.Rules) == 0 {
			return nil, fmt.Errorf("grammar %s: no rules", name)
		}
		for i, rc := range gc.Rules {
			spec, err := rc.Spec.TokenSpec()
			if err != nil {
				return nil, fmt.Errorf("grammar %s, rule %d (%s): %w", name, i+1, rc.Name, err)
			}
			g.Rules = append(g.Rules, Rule{
				Name:     rc.Name,
				Spec:     spec,
				Optional: rc.Optional,
				Repeat:   rc.Repeat,
			})
		}
		result[name] = g
	}
	return result, nil
}

// MustParseConfig is ParseConfig for configuration embedded in the binary;
// it panics on error.
func MustParseConfig(data []byte) map[string]Grammar {
	grammars, err := ParseConfig(data)
	if err != nil {
		panic(err)
	}
	return grammars
}
