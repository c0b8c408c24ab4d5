package model

import (
	"time"
)

type Comment struct {
	ID         int64     `json:"id"`
	PictureID  int64     `json:"picture_id"`
	UserID     int64     `json:"user_id"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	IsFlagged  bool      `json:"is_flagged"`
	FlagReason *string   `json:"flag_reason"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	UserID    int64  `json:"user_id"`
	PictureID int64  `json:"picture_id"`
	Content   string `json:"content" validate:"required,min=1,max=2000"`
}
