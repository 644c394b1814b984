package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingParameter matches any ParamError raised for an absent parameter.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrBadParameterType matches any ParamError raised for a malformed value.
	ErrBadParameterType = errors.New("bad parameter type")
)

// ParamErrorKind separates "absent" from "present but unusable".
type ParamErrorKind int

const (
	Missing ParamErrorKind = iota
	BadType
)

// ParamError carries the param/file/line triple a level author needs to find
// the offending value.
type ParamError struct {
	Kind     ParamErrorKind
	Param    string
	Value    string
	Expected string
	File     string
	Line     int
}

func (e *ParamError) Error() string {
	where := e.location()
	if e.Kind == Missing {
		return fmt.Sprintf("missing required param %s (%s)%s", e.Param, e.Expected, where)
	}
	return fmt.Sprintf("unable to parse param %s=%s as %s%s", e.Param, e.Value, e.Expected, where)
}

func (e *ParamError) location() string {
	if e.File == "" {
		return ""
	}
	return fmt.Sprintf(" in %s:%d", e.File, e.Line)
}

func (e *ParamError) Is(target error) bool {
	switch target {
	case ErrMissingParameter:
		return e.Kind == Missing
	case ErrBadParameterType:
		return e.Kind == BadType
	}
	return false
}

// SyntaxError is a level file line that could not be tokenised.
type SyntaxError struct {
	File   string
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s in %s:%d", e.Reason, e.File, e.Line)
}

// MapError turns a lexer or grammar failure on one level line into a message
// naming what the author most likely got wrong.
func MapError(file string, lineNum int, input string, err error) error {
	if q := unclosedQuote(input); q != 0 {
		return &SyntaxError{File: file, Line: lineNum, Reason: fmt.Sprintf("Unclosed %c", q)}
	}

	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "=") {
		return &SyntaxError{File: file, Line: lineNum, Reason: "line starts with a parameter, expected a command name"}
	}

	return &SyntaxError{File: file, Line: lineNum, Reason: fmt.Sprintf("unable to parse line %q: %v", input, err)}
}

// unclosedQuote returns the quote character left open on the line, or 0.
func unclosedQuote(s string) rune {
	var open rune
	for _, r := range s {
		switch {
		case open == 0 && (r == '"' || r == '\''):
			open = r
		case open != 0 && r == open:
			open = 0
		}
	}
	return open
}
