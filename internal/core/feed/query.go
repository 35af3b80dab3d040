// Package feed describes which posts a feed view shows. A Query only
// describes a selection; post repositories evaluate it when a page is requested.
package feed

import "github.com/gofrs/uuid"

// Query selects posts, newest first. The zero value selects every post.
type Query struct {
	groupID   uuid.UUID
	authorIDs []uuid.UUID
	byAuthors bool
}

// All selects every post.
func All() Query { return Query{} }

// InGroup narrows q to posts filed under groupID.
func (q Query) InGroup(groupID uuid.UUID) Query {
	q.groupID = groupID
	return q
}

// ByAuthor narrows q to posts written by authorID.
func (q Query) ByAuthor(authorID uuid.UUID) Query {
	return q.ByAuthors(authorID)
}

// ByAuthors narrows q to posts written by any of ids. An empty set selects
// nothing.
func (q Query) ByAuthors(ids ...uuid.UUID) Query {
	authors := make([]uuid.UUID, len(ids))
	copy(authors, ids)
	q.authorIDs = authors
	q.byAuthors = true
	return q
}

func (q Query) Group() (uuid.UUID, bool) {
	return q.groupID, q.groupID != uuid.Nil
}

func (q Query) Authors() ([]uuid.UUID, bool) {
	return q.authorIDs, q.byAuthors
}

// Empty reports whether q can match no post at all.
func (q Query) Empty() bool {
	return q.byAuthors && len(q.authorIDs) == 0
}
