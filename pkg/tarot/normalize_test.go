package tarot_test

import (
	"testing"

	"github.com/latoulicious/arcanum/pkg/tarot"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name with extension",
			input:    "the_fool.png",
			expected: "the_fool",
		},
		{
			name:     "spaces and mixed case",
			input:    "The Fool.png",
			expected: "the_fool",
		},
		{
			name:     "hyphens and uppercase extension",
			input:    "the-fool.PNG",
			expected: "the_fool",
		},
		{
			name:     "underscores and jpeg extension",
			input:    "THE_FOOL.jpeg",
			expected: "the_fool",
		},
		{
			name:     "webp extension",
			input:    "Ace of Cups.webp",
			expected: "ace_of_cups",
		},
		{
			name:     "separator runs collapse",
			input:    "king --  of __ swords.jpg",
			expected: "king_of_swords",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "_card back_.png",
			expected: "card_back",
		},
		{
			name:     "no extension",
			input:    "queen_of_wands",
			expected: "queen_of_wands",
		},
		{
			name:     "doubled extension",
			input:    "the_fool.png.png",
			expected: "the_fool",
		},
		{
			name:     "mixed doubled extension",
			input:    "ace of cups.jpg.jpeg",
			expected: "ace_of_cups",
		},
		{
			name:     "unknown extension kept",
			input:    "notes.txt",
			expected: "notes.txt",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "separators only",
			input:    "-_- ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tarot.NormalizeFilename(tt.input))
		})
	}
}

func TestNormalizeFilenameIdempotent(t *testing.T) {
	inputs := []string{
		"The Fool.png",
		"the-fool.PNG",
		"01 of Pentacles.jpeg",
		"card back design.webp",
		"already_normalized",
		"",
		"  spaced  out  ",
		"the_fool.png.png",
		"ace of cups.jpg.jpeg",
		"scan.webp.JPG.png",
	}

	for _, input := range inputs {
		once := tarot.NormalizeFilename(input)
		twice := tarot.NormalizeFilename(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", input)
	}
}

func TestNormalizeFilenameSeparatorInvariance(t *testing.T) {
	variants := []string{"The Fool.png", "the-fool.PNG", "THE_FOOL.jpeg"}
	for _, variant := range variants {
		assert.Equal(t, "the_fool", tarot.NormalizeFilename(variant))
	}
}
