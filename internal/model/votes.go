package model

import (
	"time"
)

const (
	VoteUpvote   = "upvote"
	VoteDownvote = "downvote"
)

// Vote records one user's current stance on one target. At most one row
// exists per (user, target); a repeated vote replaces the type and timestamp
// in place.
type Vote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PictureID *int64    `json:"picture_id"`
	CommentID *int64    `json:"comment_id"`
	VoteType  string    `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Target rebuilds the TargetRef from the row's nullable pair.
func (v Vote) Target() (TargetRef, error) {
	return NewTargetRef(v.PictureID, v.CommentID)
}

type CreateVoteRequest struct {
	UserID    int64  `json:"user_id"`
	PictureID *int64 `json:"picture_id"`
	CommentID *int64 `json:"comment_id"`
	VoteType  string `json:"vote_type" validate:"required,oneof=upvote downvote"`
}
