package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
)

// ParseLevelRef parses a level reference given on the command line.
// The accepted forms are:
//
//	<category> <chapter> <rank>     e.g. "missions 1 2"
//	<category>/<chapter>/<rank>     e.g. "freemissions/3/1"
//	<category>:<chapter>            rank 0, the chapter title file
//	<path>.txt                      a level file read as is
//
// A bare path is filed under the custom levels category.
func ParseLevelRef(input string) (engine.LevelRef, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return engine.LevelRef{}, fmt.Errorf("empty level reference")
	}

	// 1. Plain level files
	if strings.HasSuffix(strings.ToLower(input), ".txt") {
		return engine.LevelRef{Category: data.CategoryCustomLevels, Path: input}, nil
	}

	// 2. Category, chapter and rank
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '/' || r == ':' || r == '\t'
	})
	if len(tokens) < 2 || len(tokens) > 3 {
		return engine.LevelRef{}, fmt.Errorf("level reference %q must be <category> <chapter> [<rank>]", input)
	}

	category, err := data.ParseCategory(tokens[0])
	if err != nil {
		return engine.LevelRef{}, err
	}
	ref := engine.LevelRef{Category: category}

	if ref.Chapter, err = strconv.Atoi(tokens[1]); err != nil || ref.Chapter < 0 {
		return engine.LevelRef{}, fmt.Errorf("invalid chapter %q in level reference", tokens[1])
	}
	if len(tokens) == 3 {
		if ref.Rank, err = strconv.Atoi(tokens[2]); err != nil || ref.Rank < 0 {
			return engine.LevelRef{}, fmt.Errorf("invalid rank %q in level reference", tokens[2])
		}
	}
	return ref, nil
}
