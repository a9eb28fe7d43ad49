package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/textmatch"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDGeneratorProducesGUIDs() {
	gen := idgen.NewUUID()
	first := gen.Generate()
	second := gen.Generate()

	s.True(textmatch.IsGUID(first))
	s.True(textmatch.IsGUID(second))
	s.NotEqual(first, second)
}

func (s *IDGenTestSuite) TestSequentialGenerator() {
	s.Equal("token_1", idgen.NewSequential("token").Generate())

	gen := idgen.NewSequential("")
	s.Equal("1", gen.Generate())
	s.Equal("2", gen.Generate())
}
