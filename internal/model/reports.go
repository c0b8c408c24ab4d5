package model

import (
	"time"
)

// Report reasons.
const (
	ReasonInappropriate = "inappropriate"
	ReasonSpam          = "spam"
	ReasonHarassment    = "harassment"
	ReasonCopyright     = "copyright"
	ReasonOther         = "other"
)

// Report statuses. A report starts pending and transitions to reviewed or
// dismissed; there is no path back to pending.
const (
	ReportPending   = "pending"
	ReportReviewed  = "reviewed"
	ReportDismissed = "dismissed"
)

// Report is a complaint by one user against one target. Multiple reports per
// (reporter, target) are allowed; report volume drives auto-flagging.
type Report struct {
	ID             int64      `json:"id"`
	ReporterUserID int64      `json:"reporter_user_id"`
	PictureID      *int64     `json:"picture_id"`
	CommentID      *int64     `json:"comment_id"`
	Reason         string     `json:"reason"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	AdminNotes     *string    `json:"admin_notes"`
	CreatedAt      time.Time  `json:"created_at"`
	ReviewedAt     *time.Time `json:"reviewed_at"`
}

// Target rebuilds the TargetRef from the row's nullable pair.
func (r Report) Target() (TargetRef, error) {
	return NewTargetRef(r.PictureID, r.CommentID)
}

type CreateReportRequest struct {
	ReporterUserID int64   `json:"reporter_user_id"`
	PictureID      *int64  `json:"picture_id"`
	CommentID      *int64  `json:"comment_id"`
	Reason         string  `json:"reason" validate:"required,oneof=inappropriate spam harassment copyright other"`
	Description    *string `json:"description"`
}

type UpdateReportStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=reviewed dismissed"`
	AdminNotes *string `json:"admin_notes"`
}
