package feed

import (
	"yatube/internal/core/paginator"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// PageDTO is one page of a feed plus its pagination metadata.
type PageDTO struct {
	Number      int                 `json:"number"`
	NumPages    int                 `json:"num_pages"`
	Count       int64               `json:"count"`
	PerPage     int                 `json:"per_page"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
	StartIndex  int                 `json:"start_index"`
	EndIndex    int                 `json:"end_index"`
	Posts       []*postPort.PostDTO `json:"posts"`
}

func NewPageDTO(pg paginator.Page, posts []*postPort.PostDTO) *PageDTO {
	if posts == nil {
		posts = []*postPort.PostDTO{}
	}
	return &PageDTO{
		Number:      pg.Number,
		NumPages:    pg.NumPages,
		Count:       pg.Count,
		PerPage:     pg.PerPage,
		HasNext:     pg.HasNext(),
		HasPrevious: pg.HasPrevious(),
		StartIndex:  pg.StartIndex(),
		EndIndex:    pg.EndIndex(),
		Posts:       posts,
	}
}

type GroupFeedDTO struct {
	Group *groupPort.GroupDTO `json:"group"`
	Page  *PageDTO            `json:"page_obj"`
}

type ProfileFeedDTO struct {
	Author         *userPort.UserDTO `json:"author"`
	PostCount      int64             `json:"post_count"`
	FollowersCount int64             `json:"followers_count"`
	FollowingCount int64             `json:"following_count"`
	Following      bool              `json:"following"`
	Page           *PageDTO          `json:"page_obj"`
}
