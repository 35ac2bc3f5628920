package textreader

import (
	"fmt"
	"strings"
)

// Mode selects which search algorithm GetNext runs.
type Mode int

const (
	LiteralMode Mode = iota + 1
	WhitespaceMode
	NonWhitespaceMode
	DelimitedMode
	EnclosedMode
)

var modeToName = map[Mode]string{
	LiteralMode:       "literal",
	WhitespaceMode:    "whitespace",
	NonWhitespaceMode: "nonwhitespace",
	DelimitedMode:     "delimited",
	EnclosedMode:      "enclosed",
}

func init() {
	// make sure we panic if a name isn't declared
	for m := LiteralMode; m <= EnclosedMode; m++ {
		if modeToName[m] == "" {
			panic("you have not updated modeToName")
		}
	}
}

func (m Mode) String() string {
	if name, ok := modeToName[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) GoString() string {
	return m.String()
}

func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeToName[m]; !ok {
		return nil, fmt.Errorf("unknown mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts the lower-case mode names, ignoring case and
// surrounding whitespace. This lets modes be written by name in configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for mode, n := range modeToName {
		if n == name {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", string(text))
}
