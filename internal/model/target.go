package model

import (
	"errors"
	"fmt"
)

// ErrTargetMismatch is returned when a request names zero or both of
// picture_id and comment_id. Votes and reports apply to exactly one target.
var ErrTargetMismatch = errors.New("exactly one of picture_id or comment_id must be provided")

type TargetKind string

const (
	TargetPicture TargetKind = "picture"
	TargetComment TargetKind = "comment"
)

// TargetRef identifies the single picture or comment a vote or report
// applies to. It is constructed once at the request boundary so the illegal
// both/neither states never reach the core.
type TargetRef struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

func NewTargetRef(pictureID, commentID *int64) (TargetRef, error) {
	switch {
	case pictureID != nil && commentID != nil:
		return TargetRef{}, ErrTargetMismatch
	case pictureID != nil:
		return TargetRef{Kind: TargetPicture, ID: *pictureID}, nil
	case commentID != nil:
		return TargetRef{Kind: TargetComment, ID: *commentID}, nil
	default:
		return TargetRef{}, ErrTargetMismatch
	}
}

// PictureID returns the picture id and true when the target is a picture.
func (t TargetRef) PictureID() (int64, bool) {
	if t.Kind == TargetPicture {
		return t.ID, true
	}
	return 0, false
}

// CommentID returns the comment id and true when the target is a comment.
func (t TargetRef) CommentID() (int64, bool) {
	if t.Kind == TargetComment {
		return t.ID, true
	}
	return 0, false
}

func (t TargetRef) String() string {
	return fmt.Sprintf("%s/%d", t.Kind, t.ID)
}

// Target carries the moderation-relevant fields of a picture or comment:
// the denormalized tallies and the visibility flag.
type Target struct {
	Ref        TargetRef `json:"ref"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	IsFlagged  bool      `json:"is_flagged"`
	FlagReason *string   `json:"flag_reason,omitempty"`
}
