package files_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/files"
)

type LocalStoreTestSuite struct {
	suite.Suite
	root  string
	store files.Store
	ctx   context.Context
}

func TestLocalStoreSuite(t *testing.T) {
	suite.Run(t, new(LocalStoreTestSuite))
}

func (s *LocalStoreTestSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.ctx = context.Background()

	var err error
	s.store, err = files.NewLocal(&files.LocalConfig{Root: s.root})
	s.Require().NoError(err)
}

func (s *LocalStoreTestSuite) TestWriteThenRead() {
	path, err := s.store.WriteText(s.ctx, "game-1", "Aria.json", []byte(`{"a":1}`))
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.root, "game-1", "Aria.json"), path)

	data, err := s.store.ReadText(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(`{"a":1}`, string(data))

	data, err = s.store.ReadText(s.ctx, filepath.Join("game-1", "Aria.json"))
	s.Require().NoError(err)
	s.Equal(`{"a":1}`, string(data))
}

func (s *LocalStoreTestSuite) TestWriteOverwrites() {
	_, err := s.store.WriteText(s.ctx, "", "Aria.json", []byte("first"))
	s.Require().NoError(err)
	path, err := s.store.WriteText(s.ctx, "", "Aria.json", []byte("second"))
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("second", string(data))
}

func (s *LocalStoreTestSuite) TestWriteRejectsBadFilenames() {
	for _, name := range []string{"", "..", "a/b.json", `a\b.json`} {
		s.Run(name, func() {
			_, err := s.store.WriteText(s.ctx, "game-1", name, []byte("x"))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *LocalStoreTestSuite) TestReadMissing() {
	_, err := s.store.ReadText(s.ctx, "nope.json")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *LocalStoreTestSuite) TestNewLocalRequiresRoot() {
	_, err := files.NewLocal(&files.LocalConfig{})
	s.Error(err)
}
