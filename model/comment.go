package model

import "time"

// CommentEntity represents the comments table entity
type CommentEntity struct {
	ID              uint64    `db:"id"`
	Text            string    `db:"text"`
	AuthorID        uint64    `db:"author_id"`
	AdID            uint64    `db:"ad_id"`
	CreatedAt       time.Time `db:"created_at"`
	CreatedAtMillis int64     `db:"created_at_millis"`
	IsActive        bool      `db:"is_active"`
}

// CommentDetail is a comment joined with the author fields shown next to it.
type CommentDetail struct {
	CommentEntity
	AuthorFirstName string  `db:"author_first_name"`
	AuthorImage     *string `db:"author_image"`
}

func (c *CommentDetail) ToResponse() CommentResponse {
	return CommentResponse{
		PK:              c.ID,
		Author:          c.AuthorID,
		AuthorFirstName: c.AuthorFirstName,
		AuthorImage:     StringValue(c.AuthorImage),
		CreatedAt:       c.CreatedAtMillis,
		Text:            c.Text,
	}
}

type CreateOrUpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

type CommentResponse struct {
	PK              uint64 `json:"pk"`
	Author          uint64 `json:"author"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorImage     string `json:"authorImage"`
	CreatedAt       int64  `json:"createdAt"`
	Text            string `json:"text"`
}

type CommentsResponse struct {
	Count   int               `json:"count"`
	Results []CommentResponse `json:"results"`
}

func NewCommentsResponse(comments []CommentDetail) *CommentsResponse {
	res := &CommentsResponse{Results: make([]CommentResponse, 0, len(comments))}
	for i := range comments {
		res.Results = append(res.Results, comments[i].ToResponse())
	}
	res.Count = len(res.Results)
	return res
}
