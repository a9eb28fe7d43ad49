// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/rpg-porter/internal/repositories/catalog/mock"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
	directorymock "github.com/KirkDiggler/rpg-porter/internal/repositories/directory/mock"
)

// ExpectCatalog backs a mock catalog reader with in-memory tables. Unknown
// tables read as empty and the name index serves exact, visible names.
func ExpectCatalog(mockReader *catalogmock.MockReader, tables ...*entities.Table) {
	byName := make(map[string]*entities.Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	mockReader.EXPECT().
		GetTable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.GetTableInput) (*catalog.GetTableOutput, error) {
			t, ok := byName[input.Name]
			if !ok {
				t = entities.NewTable(input.Name)
			}
			return &catalog.GetTableOutput{Table: t}, nil
		}).
		AnyTimes()

	mockReader.EXPECT().
		FindByName(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.FindByNameInput) (*catalog.FindByNameOutput, error) {
			for _, row := range byName[input.Table].All() {
				if !row.Hidden && row.Name == input.Name {
					return &catalog.FindByNameOutput{Record: row}, nil
				}
			}
			return nil, errors.NotFoundf("%s named %q not found", input.Table, input.Name)
		}).
		AnyTimes()
}

// ExpectDirectory backs a mock directory with fixed users and parties.
// An empty defaultParty means the world has none.
func ExpectDirectory(mockDir *directorymock.MockRepository, users, parties []string, defaultParty string) {
	userSet := make(map[string]bool, len(users))
	for _, u := range users {
		userSet[u] = true
	}
	partySet := make(map[string]bool, len(parties))
	for _, p := range parties {
		partySet[p] = true
	}

	mockDir.EXPECT().
		UserExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input directory.UserExistsInput) (*directory.UserExistsOutput, error) {
			return &directory.UserExistsOutput{Exists: userSet[input.ID]}, nil
		}).
		AnyTimes()

	mockDir.EXPECT().
		PartyExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input directory.PartyExistsInput) (*directory.PartyExistsOutput, error) {
			return &directory.PartyExistsOutput{Exists: partySet[input.ID]}, nil
		}).
		AnyTimes()

	mockDir.EXPECT().
		GetDefaultParty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ directory.GetDefaultPartyInput) (*directory.GetDefaultPartyOutput, error) {
			if defaultParty == "" {
				return nil, errors.NotFound("no default party configured")
			}
			return &directory.GetDefaultPartyOutput{PartyID: defaultParty}, nil
		}).
		AnyTimes()
}
