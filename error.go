package textscan

import (
	"fmt"
	"strings"
)

// ParseError reports where input did not match what was expected. Offset
// counts characters from the start of the input (or of the line, when Line
// is set).
type ParseError struct {
	Line     int
	Offset   int
	Rule     string
	HaltChar rune
	Message  string
}

func (e ParseError) Error() string {
	var msg strings.Builder
	if e.Line > 0 {
		msg.WriteString(fmt.Sprintf("%d:%d: ", e.Line, e.Offset+1))
	} else {
		msg.WriteString(fmt.Sprintf("offset %d: ", e.Offset))
	}
	if e.Rule != "" {
		msg.WriteString(e.Rule + ": ")
	}
	msg.WriteString(e.Message)
	if e.HaltChar != 0 {
		msg.WriteString(fmt.Sprintf(" (halted on %q)", e.HaltChar))
	}
	return msg.String()
}

type ParseErrors struct {
	Errors []ParseError
}

func (e ParseErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("textscan syntax error:\n\n")
	for _, e := range e.Errors {
		msg.WriteString(e.Error() + "\n")
	}
	return msg.String()
}
