package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/lo"
)

var (
	lineParser     *participle.Parser[LineAST]
	lineParserOnce sync.Once
)

func grammar() *participle.Parser[LineAST] {
	lineParserOnce.Do(func() { lineParser = Build() })
	return lineParser
}

// Parser reads a level file into an ordered sequence of lines.
type Parser struct {
	// Root is the data directory relative resource paths are opened from.
	Root string

	paths *LevelPaths
	lines []*Line
	// loading holds the files being read, outermost first.
	loading []string
}

// New creates a parser rooted at the data directory root.
func New(root string) *Parser {
	p := &Parser{Root: root, paths: &LevelPaths{Language: DefaultLanguage}}
	p.paths.Exists = p.Exists
	return p
}

// SetLevelPaths gives %lvl%, %chap% and %cat% a meaning for this file.
func (p *Parser) SetLevelPaths(lp *LevelPaths) {
	if lp.Language == "" {
		lp.Language = p.paths.language()
	}
	if lp.Exists == nil {
		lp.Exists = p.Exists
	}
	p.paths = lp
}

// SetLanguage selects which ".X" variant of translated lines is kept.
func (p *Parser) SetLanguage(lang string) {
	p.paths.Language = lang
}

func (p *Parser) Language() string { return p.paths.language() }

// Paths is the level path context of the file.
func (p *Parser) Paths() *LevelPaths { return p.paths }

// Exists reports whether the resource path exists under Root.
func (p *Parser) Exists(path string) bool {
	_, err := os.Stat(p.resolve(path))
	return err == nil
}

func (p *Parser) resolve(path string) string {
	if filepath.IsAbs(path) || p.Root == "" {
		return path
	}
	return filepath.Join(p.Root, path)
}

// Load reads the resource at path, relative to Root.
func (p *Parser) Load(path string) error {
	resolved := filepath.Clean(p.resolve(path))
	f, err := os.Open(resolved)
	if err != nil {
		return fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	defer f.Close()

	p.loading = append(p.loading, resolved)
	defer func() { p.loading = p.loading[:len(p.loading)-1] }()

	return p.LoadReader(path, f)
}

// LoadReader parses r, reporting errors against name. Lines are appended to
// whatever is already loaded.
func (p *Parser) LoadReader(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	number := 0
	for scanner.Scan() {
		number++

		// 1. Normalise and drop comments
		text := strings.ReplaceAll(scanner.Text(), "\t", " ")
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		// 2. Tokenise
		ast, err := grammar().ParseString(name, text)
		if err != nil {
			return MapError(name, number, text, err)
		}

		command, lang := ast.SplitLanguage()
		line := NewLine(command)
		line.SetLocation(name, number)
		line.paths = p.paths
		for _, param := range ast.Params {
			line.addParam(param.Name(), NewParam(param.Name(), param.Raw()))
		}

		// 3. Preprocessor directives
		if strings.HasPrefix(command, "#") {
			if err := p.directive(line); err != nil {
				return err
			}
			continue
		}

		// 4. Language variants
		if lang != "" && !p.acceptLanguage(line, lang) {
			continue
		}

		p.lines = append(p.lines, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read level file %s: %w", name, err)
	}
	return nil
}

func (p *Parser) directive(line *Line) error {
	if line.Command() != "#Include" {
		return &SyntaxError{File: line.File(), Line: line.Number(), Reason: fmt.Sprintf("unknown preprocessor directive %s", line.Command())}
	}

	path, err := line.Param("file").AsPath("levels")
	if err != nil {
		return err
	}
	if lo.Contains(p.loading, filepath.Clean(p.resolve(path))) {
		return &SyntaxError{File: line.File(), Line: line.Number(), Reason: fmt.Sprintf("#Include of %s loops back to a file being read", path)}
	}
	return p.Load(path)
}

// acceptLanguage decides whether a "Command.X" line is kept. The current
// language replaces an earlier default-language line of the same command;
// a default-language line after a translated one is dropped.
func (p *Parser) acceptLanguage(line *Line, lang string) bool {
	current := p.Language()
	if lang != current && lang != DefaultLanguage {
		return false
	}

	if lang == DefaultLanguage && current != DefaultLanguage {
		for _, l := range p.lines {
			if l.Command() == line.Command() && !l.defaultLang {
				return false
			}
		}
		line.defaultLang = true
		return true
	}

	if lang == current && current != DefaultLanguage {
		for i, l := range p.lines {
			if l.Command() == line.Command() && l.defaultLang {
				p.lines = append(p.lines[:i], p.lines[i+1:]...)
				break
			}
		}
	}
	return true
}

// Lines returns every kept line in file order.
func (p *Parser) Lines() []*Line { return p.lines }

// Get returns the first line with command, or nil.
func (p *Parser) Get(command string) *Line {
	for _, l := range p.lines {
		if l.Command() == command {
			return l
		}
	}
	return nil
}

// CountLines returns how many lines use command.
func (p *Parser) CountLines(command string) int {
	n := 0
	for _, l := range p.lines {
		if l.Command() == command {
			n++
		}
	}
	return n
}

// AddLine appends a programmatically built line, used when writing saves.
func (p *Parser) AddLine(line *Line) {
	if line.paths == nil {
		line.paths = p.paths
	}
	p.lines = append(p.lines, line)
}

// WriteTo renders every line in level-file syntax.
func (p *Parser) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range p.lines {
		n, err := io.WriteString(w, l.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save writes the lines to path, relative to Root.
func (p *Parser) Save(path string) error {
	full := p.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := p.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
