package parser

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Line is one command of a level file with its parameters in file order.
type Line struct {
	command string
	params  *orderedmap.OrderedMap[string, *Param]
	file    string
	number  int
	paths   *LevelPaths

	// default-language variant, replaceable by a translated line
	defaultLang bool
}

// NewLine creates an empty line for command.
func NewLine(command string) *Line {
	return &Line{
		command: command,
		params:  orderedmap.NewOrderedMap[string, *Param](),
	}
}

func (l *Line) Command() string { return l.command }

// File is the level file the line was read from.
func (l *Line) File() string { return l.file }

// Number is the 1-based line number in File.
func (l *Line) Number() int { return l.number }

// Paths is the level path context the line's paths resolve against.
func (l *Line) Paths() *LevelPaths { return l.paths }

// SetLocation records where the line came from.
func (l *Line) SetLocation(file string, number int) {
	l.file = file
	l.number = number
}

// Param returns the named parameter, or an empty placeholder if the line
// does not have it. It never returns nil.
func (l *Line) Param(name string) *Param {
	if p, ok := l.params.Get(name); ok {
		return p
	}
	p := NewEmptyParam(name)
	p.line = l
	return p
}

// HasParam reports whether name was given on the line.
func (l *Line) HasParam(name string) bool {
	_, ok := l.params.Get(name)
	return ok
}

// SetParam adds or replaces a parameter and takes ownership of it.
func (l *Line) SetParam(name string, p *Param) {
	p.setLine(l, name)
	l.params.Set(name, p)
}

// addParam keeps the first occurrence of a repeated name.
func (l *Line) addParam(name string, p *Param) {
	if l.HasParam(name) {
		return
	}
	l.SetParam(name, p)
}

// Params returns the parameters in insertion order.
func (l *Line) Params() []*Param {
	out := make([]*Param, 0, l.params.Len())
	for _, key := range l.params.Keys() {
		p, _ := l.params.Get(key)
		out = append(out, p)
	}
	return out
}

// String renders the line back into level-file syntax.
func (l *Line) String() string {
	var sb strings.Builder
	sb.WriteString(l.command)
	for _, p := range l.Params() {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	return sb.String()
}
