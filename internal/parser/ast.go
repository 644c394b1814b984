package parser

import (
	"strings"
)

// LineAST is one tokenised level line: a command followed by name=value pairs.
type LineAST struct {
	Command string      `parser:"@Word"`
	Params  []*ParamAST `parser:"@@*"`
}

// ParamAST is one name=value pair. The value may be empty.
type ParamAST struct {
	Key   string    `parser:"@Key"`
	Value *ValueAST `parser:"@@?"`
}

// ValueAST keeps quoted strings verbatim (quotes included) so AsString can
// tell strings from bare tokens. Unquoted values run until the next key.
type ValueAST struct {
	Quoted string   `parser:"  @String"`
	Words  []string `parser:"| @Word+"`
}

// Name strips the trailing '=' the lexer keeps on keys.
func (p *ParamAST) Name() string {
	return strings.TrimSuffix(p.Key, "=")
}

// Raw returns the value as written, with quotes kept and inner runs of
// whitespace collapsed.
func (p *ParamAST) Raw() string {
	if p.Value == nil {
		return ""
	}
	if p.Value.Quoted != "" {
		return p.Value.Quoted
	}
	return strings.Join(p.Value.Words, " ")
}

// SplitLanguage separates a "Command.X" suffix. Commands without a suffix
// report an empty language.
func (l *LineAST) SplitLanguage() (command, lang string) {
	if i := strings.LastIndexByte(l.Command, '.'); i > 0 && i == len(l.Command)-2 {
		return l.Command[:i], l.Command[i+1:]
	}
	return l.Command, ""
}
