package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
	"github.com/KirkDiggler/rpg-porter/internal/testutils"
)

type RedisDirectoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    directory.Repository
	cleanup func()
}

func TestRedisDirectorySuite(t *testing.T) {
	suite.Run(t, new(RedisDirectoryTestSuite))
}

func (s *RedisDirectoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := directory.NewRedis(&directory.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisDirectoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisDirectoryTestSuite) TestNewRedisValidation() {
	_, err := directory.NewRedis(nil)
	s.Error(err)
	_, err = directory.NewRedis(&directory.RedisConfig{})
	s.Error(err)
}

func (s *RedisDirectoryTestSuite) TestUsers() {
	_, err := s.repo.AddUser(s.ctx, directory.AddUserInput{ID: "user-1"})
	s.Require().NoError(err)

	testCases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "known user", id: "user-1", want: true},
		{name: "unknown user", id: "user-2", want: false},
		{name: "empty id", id: "", want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.UserExists(s.ctx, directory.UserExistsInput{ID: tc.id})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Exists)
		})
	}

	_, err = s.repo.AddUser(s.ctx, directory.AddUserInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisDirectoryTestSuite) TestParties() {
	_, err := s.repo.GetDefaultParty(s.ctx, directory.GetDefaultPartyInput{})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.AddParty(s.ctx, directory.AddPartyInput{ID: "party-1"})
	s.Require().NoError(err)
	_, err = s.repo.AddParty(s.ctx, directory.AddPartyInput{ID: "party-2", Default: true})
	s.Require().NoError(err)

	exists, err := s.repo.PartyExists(s.ctx, directory.PartyExistsInput{ID: "party-1"})
	s.Require().NoError(err)
	s.True(exists.Exists)

	missing, err := s.repo.PartyExists(s.ctx, directory.PartyExistsInput{ID: "party-9"})
	s.Require().NoError(err)
	s.False(missing.Exists)

	def, err := s.repo.GetDefaultParty(s.ctx, directory.GetDefaultPartyInput{})
	s.Require().NoError(err)
	s.Equal("party-2", def.PartyID)
}
