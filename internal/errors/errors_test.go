package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "token not found",
			expected: "NOT_FOUND: token not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "document is empty",
			expected: "INVALID_ARGUMENT: document is empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load table")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load table", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("table", "Race")
	wrapped := errors.Wrap(baseErr, "ancestry not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("Race", wrapped.Meta["table"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("missing").WithMeta("id", "x")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "bad document")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal("x", wrapped.Meta["id"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestTransferTaxonomy() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"validation", errors.Validation("not a hero"), errors.IsValidation},
		{"parse", errors.Parse("empty document"), errors.IsParse},
		{"parse wrap", errors.ParseWrap(fmt.Errorf("eof"), "bad json"), errors.IsParse},
		{"schema", errors.Schema("ancestry", "AncestryDto"), errors.IsSchema},
		{"unknown type", errors.UnknownType("GhostDto"), errors.IsUnknownType},
		{"resolution miss", errors.ResolutionMiss("Race", "Elf", ""), errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.check(tc.err))
			s.True(tc.check(errors.Wrap(tc.err, "wrapped")))
		})
	}
}

func (s *ErrorsTestSuite) TestSchemaMeta() {
	err := errors.Schema("ancestry", "AncestryDto")
	s.Equal("ancestry", errors.GetMeta(err)["field"])
	s.Contains(err.Error(), `field "ancestry" holds a AncestryDto record`)
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Equal("user friendly message", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("other")))
	s.False(errors.Is(errors.NotFound("a"), errors.Internal("a")))
}
