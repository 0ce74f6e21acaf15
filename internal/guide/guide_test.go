package guide

import (
	"strings"
	"testing"
)

func TestBuildDescribesPuzzleShape(t *testing.T) {
	steps := Build(Metadata{Title: "Julegave rebus", Sections: 6, Letters: 12})
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if !strings.Contains(steps[0].Description, "Julegave rebus spreads 12 letters over 6 sections") {
		t.Fatalf("first step should describe the puzzle, got %q", steps[0].Description)
	}
}

func TestBuildSingular(t *testing.T) {
	steps := Build(Metadata{Sections: 1, Letters: 1})
	if !strings.Contains(steps[0].Description, "This rebus spreads 1 letter over 1 section,") {
		t.Fatalf("unexpected description: %q", steps[0].Description)
	}
}

func TestBuildWithoutMetadata(t *testing.T) {
	steps := Build(Metadata{})
	if strings.Contains(steps[0].Description, "spreads") {
		t.Fatalf("shape sentence should be omitted without counts: %q", steps[0].Description)
	}
}
