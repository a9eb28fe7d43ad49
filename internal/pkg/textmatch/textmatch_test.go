package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/pkg/textmatch"
)

type TextMatchTestSuite struct {
	suite.Suite
}

func TestTextMatchSuite(t *testing.T) {
	suite.Run(t, new(TextMatchTestSuite))
}

func (s *TextMatchTestSuite) TestIsGUID() {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"hyphenated lower", "3f2504e0-4f89-11d3-9a0c-0305e82c3301", true},
		{"hyphenated upper", "3F2504E0-4F89-11D3-9A0C-0305E82C3301", true},
		{"no hyphens", "3f2504e04f8911d39a0c0305e82c3301", false},
		{"braced", "{3f2504e0-4f89-11d3-9a0c-0305e82c3301}", false},
		{"urn", "urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301", false},
		{"not hex", "zf2504e0-4f89-11d3-9a0c-0305e82c3301", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, textmatch.IsGUID(tc.input))
		})
	}
}

func (s *TextMatchTestSuite) TestSanitize() {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"lower and trim", "  Fire Giant  ", "fire giant"},
		{"strips apostrophes and dots", "Devil's Bargain.", "devils bargain"},
		{"keeps whitelisted punctuation", "Hex (Lesser), +1?", "hex (lesser), +1?"},
		{"keeps hyphen", "Half-Elf", "half-elf"},
		{"drops brackets and quotes", `[Polder] "Shadow"`, "polder shadow"},
		{"folds accents", "Élan Vital", "elan vital"},
		{"drops non-latin letters", "Ωmega", "mega"},
		{"drops letters without a decomposition", "Ærin Straße", "rin strae"},
		{"drops non-ascii digits", "Tier ٣", "tier"},
		{"drops non-ascii spaces", "Sol\u00a0Invictus", "solinvictus"},
		{"keeps ascii whitespace", "Sol\tInvictus", "sol\tinvictus"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, textmatch.Sanitize(tc.input))
		})
	}
}

func (s *TextMatchTestSuite) TestMatch() {
	pairs := [][2]string{
		{"Devil's Bargain", "devils bargain"},
		{"Sol", "sol "},
		{"Wode Elf", "Wode Elf"},
		{"Polder", "Hakaan"},
		{"", "   "},
		{"Élan", "elan"},
		{"Ωmega", "mega"},
	}

	for _, p := range pairs {
		s.Equal(textmatch.Match(p[0], p[1]), textmatch.Match(p[1], p[0]), "symmetry for %q / %q", p[0], p[1])
		s.True(textmatch.Match(p[0], p[0]), "reflexive for %q", p[0])
	}

	s.True(textmatch.Match("Devil's Bargain", "devils bargain"))
	s.False(textmatch.Match("Polder", "Hakaan"))
	s.True(textmatch.Match("Ωmega", "mega"))
}
