package parser_test

import (
	"testing"

	"github.com/colobot/colobot-sub009/internal/parser"
)

func TestParseCommandWithParams(t *testing.T) {
	p := parser.Build()

	line, err := p.ParseString("", `CreateObject type=PowerCell pos=0;0 name="My bot" dir=1.5`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if line.Command != "CreateObject" {
		t.Errorf("Expected CreateObject, got %s", line.Command)
	}

	if len(line.Params) != 4 {
		t.Fatalf("Expected 4 params, got %d", len(line.Params))
	}

	want := [][2]string{{"type", "PowerCell"}, {"pos", "0;0"}, {"name", `"My bot"`}, {"dir", "1.5"}}
	for i, w := range want {
		if line.Params[i].Name() != w[0] || line.Params[i].Raw() != w[1] {
			t.Errorf("Param %d: expected %s=%s, got %s=%s", i, w[0], w[1], line.Params[i].Name(), line.Params[i].Raw())
		}
	}
}

func TestParseUnquotedValueRunsToNextKey(t *testing.T) {
	p := parser.Build()

	line, err := p.ParseString("", "Title text=hello brave world resume=1")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if line.Params[0].Raw() != "hello brave world" {
		t.Errorf("Expected joined words, got %q", line.Params[0].Raw())
	}
	if line.Params[1].Name() != "resume" {
		t.Errorf("Expected resume, got %s", line.Params[1].Name())
	}
}

func TestParseEmptyValue(t *testing.T) {
	p := parser.Build()

	line, err := p.ParseString("", "Audio filename= repeat=0")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if line.Params[0].Raw() != "" {
		t.Errorf("Expected empty value, got %q", line.Params[0].Raw())
	}
}

func TestParseArrayKeys(t *testing.T) {
	p := parser.Build()

	line, err := p.ParseString("", "TerrainLevel id[0]=1 id[1]=2")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if line.Params[1].Name() != "id[1]" {
		t.Errorf("Expected id[1], got %s", line.Params[1].Name())
	}
}

func TestSplitLanguage(t *testing.T) {
	p := parser.Build()

	line, err := p.ParseString("", `Title.F text="Bonjour"`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	cmd, lang := line.SplitLanguage()
	if cmd != "Title" || lang != "F" {
		t.Errorf("Expected Title/F, got %s/%s", cmd, lang)
	}

	line, _ = p.ParseString("", "Level.Controller")
	cmd, lang = line.SplitLanguage()
	if cmd != "Level.Controller" || lang != "" {
		t.Errorf("Expected no language split, got %s/%s", cmd, lang)
	}
}

func TestParseRejectsUnclosedQuote(t *testing.T) {
	p := parser.Build()

	if _, err := p.ParseString("", `Title text="Unclosed`); err == nil {
		t.Fatalf("Expected an error for an unclosed quote")
	}
}
