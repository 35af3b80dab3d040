package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/comment"
	"yatube/internal/core/errs"
	"yatube/internal/core/feed"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

type fixture struct {
	users     *database.UserRepositoryDatabase
	groups    *database.GroupRepositoryDatabase
	posts     *database.PostRepositoryDatabase
	comments  *database.CommentRepositoryDatabase
	followers *database.FollowerRepositoryDatabase
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.New(t)
	return &fixture{
		users:     database.NewUserRepositoryDatabase(db),
		groups:    database.NewGroupRepositoryDatabase(db),
		posts:     database.NewPostRepositoryDatabase(db),
		comments:  database.NewCommentRepositoryDatabase(db),
		followers: database.NewFollowerRepositoryDatabase(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *user.User {
	u, err := f.users.Create(context.Background(), &user.User{Username: username, Password: "x"})
	require.NoError(t, err)
	return u
}

func (f *fixture) group(t *testing.T, slug string) *group.Group {
	g, err := f.groups.Create(context.Background(), &group.Group{Title: "Group " + slug, Slug: slug})
	require.NoError(t, err)
	return g
}

func (f *fixture) post(t *testing.T, author *user.User, g *group.Group, text string, at time.Time) *post.Post {
	p := &post.Post{Text: text, UserID: author.ID, CreatedAt: at}
	if g != nil {
		p.GroupID = &g.ID
	}
	created, err := f.posts.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "leo")

	byName, err := f.users.FindByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "leo", byID.Username)

	_, err = f.users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.users.Create(ctx, &user.User{Username: "leo", Password: "y"})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestGroupRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.group(t, "zeta")
	a := f.group(t, "alpha")

	got, err := f.groups.FindBySlug(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = f.groups.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	list, err := f.groups.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Group alpha", list[0].Title)
}

func TestPostFindOrdersNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.user(t, "author")
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	old := f.post(t, author, nil, "old", base)
	tieA := f.post(t, author, nil, "tie a", base.Add(time.Hour))
	tieB := f.post(t, author, nil, "tie b", base.Add(time.Hour))

	posts, err := f.posts.Find(ctx, feed.All(), 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []uint64{tieB.ID, tieA.ID, old.ID}, []uint64{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, "author", posts[0].User.Username)
}

func TestPostQueryFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := f.user(t, "ann")
	bob := f.user(t, "bob")
	cats := f.group(t, "cats")
	now := time.Now()

	f.post(t, ann, cats, "ann cats", now)
	f.post(t, ann, nil, "ann plain", now.Add(time.Second))
	f.post(t, bob, cats, "bob cats", now.Add(2*time.Second))

	cases := []struct {
		name string
		q    feed.Query
		want []string
	}{
		{"all", feed.All(), []string{"bob cats", "ann plain", "ann cats"}},
		{"group", feed.All().InGroup(cats.ID), []string{"bob cats", "ann cats"}},
		{"author", feed.All().ByAuthor(ann.ID), []string{"ann plain", "ann cats"}},
		{"authors", feed.All().ByAuthors(ann.ID, bob.ID), []string{"bob cats", "ann plain", "ann cats"}},
		{"group and author", feed.All().InGroup(cats.ID).ByAuthor(bob.ID), []string{"bob cats"}},
		{"no authors", feed.All().ByAuthors(), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			count, err := f.posts.Count(ctx, tc.q)
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), count)

			posts, err := f.posts.Find(ctx, tc.q, 0, 10)
			require.NoError(t, err)
			var texts []string
			for _, p := range posts {
				texts = append(texts, p.Text)
			}
			assert.Equal(t, tc.want, texts)
		})
	}
}

func TestPostFindWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.user(t, "author")
	base := time.Now()
	for i := 0; i < 13; i++ {
		f.post(t, author, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Second))
	}

	first, err := f.posts.Find(ctx, feed.All(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	second, err := f.posts.Find(ctx, feed.All(), 10, 10)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, "post 0", second[2].Text)
}

func TestPostUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.user(t, "author")
	g := f.group(t, "g")
	p := f.post(t, author, g, "before", time.Now())

	p.Text = "after"
	p.GroupID = nil
	require.NoError(t, f.posts.Update(ctx, p))

	got, err := f.posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)

	_, err = f.comments.Create(ctx, &comment.Comment{PostID: p.ID, UserID: author.ID, Text: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.posts.Delete(ctx, p.ID))
	_, err = f.posts.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	comments, err := f.comments.FindByPostID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.ErrorIs(t, f.posts.Delete(ctx, p.ID), errs.ErrNotFound)
}

func TestCommentsOldestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.user(t, "author")
	p := f.post(t, author, nil, "post", time.Now())
	base := time.Now()

	_, err := f.comments.Create(ctx, &comment.Comment{PostID: p.ID, UserID: author.ID, Text: "second", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, &comment.Comment{PostID: p.ID, UserID: author.ID, Text: "first", CreatedAt: base})
	require.NoError(t, err)

	comments, err := f.comments.FindByPostID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "author", comments[0].User.Username)
}

func TestFollowEdgeIsUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := f.user(t, "ann")
	bob := f.user(t, "bob")

	created, err := f.followers.Create(ctx, &follower.Follow{FollowerID: ann.ID, UserID: bob.ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.followers.Create(ctx, &follower.Follow{FollowerID: ann.ID, UserID: bob.ID})
	require.NoError(t, err)
	assert.False(t, created)

	exists, err := f.followers.Exists(ctx, ann.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = f.followers.Exists(ctx, bob.ID, ann.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	followed, err := f.followers.FindFollowed(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, bob.ID, followed[0].ID)

	followers, err := f.followers.FindFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "ann", followers[0].Username)

	n, err := f.followers.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = f.followers.CountFollowed(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
	n, err = f.followers.CountFollowed(ctx, ann.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, f.followers.Delete(ctx, ann.ID, bob.ID))
	require.NoError(t, f.followers.Delete(ctx, ann.ID, bob.ID))
	exists, err = f.followers.Exists(ctx, ann.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindByIDUnknownUUID(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.FindByID(context.Background(), uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
