package groupapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/errs"
)

func TestCreateAndList(t *testing.T) {
	s := NewGroupService(database.NewGroupRepositoryDatabase(dbtest.New(t)))
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, "Poetry", "poetry", "verses")
	require.NoError(t, err)
	_, err = s.CreateGroup(ctx, "Cats", "cats", "")
	require.NoError(t, err)

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Cats", groups[0].Title)
	assert.Equal(t, "Poetry", groups[1].Title)

	g, err := s.GetBySlug(ctx, "poetry")
	require.NoError(t, err)
	assert.Equal(t, "verses", g.Description)
}

func TestCreateValidates(t *testing.T) {
	s := NewGroupService(database.NewGroupRepositoryDatabase(dbtest.New(t)))
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, "", "slug", "")
	assert.True(t, errs.IsValidation(err))
	_, err = s.CreateGroup(ctx, "Title", "bad slug!", "")
	assert.True(t, errs.IsValidation(err))

	_, err = s.CreateGroup(ctx, "Title", "dup", "")
	require.NoError(t, err)
	_, err = s.CreateGroup(ctx, "Other", "dup", "")
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUnknownSlug(t *testing.T) {
	s := NewGroupService(database.NewGroupRepositoryDatabase(dbtest.New(t)))

	_, err := s.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
