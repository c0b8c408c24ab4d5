package model

import (
	"time"
)

type Picture struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         string    `json:"mime_type"`
	FileSize         int64     `json:"file_size"`
	Width            *int      `json:"width"`
	Height           *int      `json:"height"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	H3Index          *string   `json:"h3_index"`
	ExifData         *string   `json:"exif_data"`
	UploadTimestamp  time.Time `json:"upload_timestamp"`
	IsFlagged        bool      `json:"is_flagged"`
	FlagReason       *string   `json:"flag_reason"`
	Upvotes          int       `json:"upvotes"`
	Downvotes        int       `json:"downvotes"`
	CommentCount     int       `json:"comment_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type UploadPictureRequest struct {
	UserID           int64    `json:"user_id"`
	OriginalFilename string   `json:"original_filename" validate:"required"`
	MimeType         string   `json:"mime_type" validate:"required"`
	FileSize         int64    `json:"file_size" validate:"required,gt=0"`
	Width            *int     `json:"width"`
	Height           *int     `json:"height"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
	ExifData         *string  `json:"exif_data"`
}

type PictureFeedParams struct {
	H3Index string
	Limit   int
	Offset  int
}
