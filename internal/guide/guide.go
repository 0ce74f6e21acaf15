package guide

import (
	"fmt"
	"strings"
)

// Step represents one line of the how-to-play panel.
type Step struct {
	Title       string
	Description string
}

// Metadata carries just enough context for personalizing guide steps.
type Metadata struct {
	Title    string
	Sections int
	Letters  int
}

// Build returns the how-to-play walkthrough for a puzzle.
func Build(meta Metadata) []Step {
	displayTitle := strings.TrimSpace(meta.Title)
	if displayTitle == "" {
		displayTitle = "This rebus"
	}
	shape := ""
	if meta.Sections > 0 && meta.Letters > 0 {
		shape = fmt.Sprintf(" %s spreads %d %s over %d %s, one per clue.",
			displayTitle, meta.Letters, plural(meta.Letters, "letter", "letters"),
			meta.Sections, plural(meta.Sections, "section", "sections"))
	}

	return []Step{
		{
			Title:       "Read the clues",
			Description: "Each box is a section with a hint underneath." + shape,
		},
		{
			Title:       "Type letters",
			Description: "Typing fills the focused cell and jumps ahead, into the next section once a section is full. Pasting keeps only the last character.",
		},
		{
			Title:       "Fix mistakes",
			Description: "Backspace clears the focused cell. On an empty cell it steps back, into the previous section from the first cell.",
		},
		{
			Title:       "Watch the colours",
			Description: "A full section turns green when every letter is right and red when any letter is wrong. Letters are case sensitive.",
		},
		{
			Title:       "Solve it",
			Description: "When every section is green the reward is revealed.",
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
