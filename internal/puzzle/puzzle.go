// Package puzzle holds the rebus definition, the player's guesses and the
// pure functions that score them.
package puzzle

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the only puzzle file version understood by Parse.
const FormatVersion = 1

var (
	ErrNoSections   = errors.New("puzzle has no sections")
	ErrEmptySection = errors.New("section has no letters")
	ErrLetterWidth  = errors.New("letter must be exactly one character")
)

//go:embed default.yaml
var defaultPuzzle []byte

// Section is one clue and the letters it contributes to the answer.
type Section struct {
	Letters []string `yaml:"letters"`
	Hint    string   `yaml:"hint,omitempty"`
}

// Reward is revealed once every cell matches.
type Reward struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Definition is the immutable puzzle loaded at startup.
type Definition struct {
	Version  int       `yaml:"version,omitempty"`
	Title    string    `yaml:"title,omitempty"`
	Intro    string    `yaml:"intro,omitempty"`
	Sections []Section `yaml:"sections"`
	Reward   Reward    `yaml:"reward"`
}

// Validate reports the first structural problem in the definition.
func (d Definition) Validate() error {
	if len(d.Sections) == 0 {
		return ErrNoSections
	}
	for i, section := range d.Sections {
		if len(section.Letters) == 0 {
			return fmt.Errorf("section %d: %w", i+1, ErrEmptySection)
		}
		for j, letter := range section.Letters {
			if utf8.RuneCountInString(letter) != 1 {
				return fmt.Errorf("section %d letter %d (%q): %w", i+1, j+1, letter, ErrLetterWidth)
			}
		}
	}
	return nil
}

// LetterCount returns the number of cells across all sections.
func (d Definition) LetterCount() int {
	return lo.SumBy(d.Sections, func(s Section) int { return len(s.Letters) })
}

// Answer joins every expected letter in order.
func (d Definition) Answer() string {
	return strings.Join(lo.FlatMap(d.Sections, func(s Section, _ int) []string { return s.Letters }), "")
}

// Default returns the built-in Christmas rebus.
func Default() Definition {
	def, err := Parse(defaultPuzzle)
	if err != nil {
		panic(fmt.Sprintf("embedded puzzle is invalid: %v", err))
	}
	return def
}

// Load reads and validates a puzzle file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read puzzle file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML puzzle and validates it.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to parse puzzle: %w", err)
	}
	if def.Version == 0 {
		def.Version = FormatVersion
	}
	if def.Version != FormatVersion {
		return Definition{}, fmt.Errorf("unsupported puzzle version: %d (expected %d)", def.Version, FormatVersion)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
