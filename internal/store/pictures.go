package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

const pictureColumns = `
    id, user_id, filename, original_filename, mime_type, file_size,
    width, height, latitude, longitude, h3_index, exif_data,
    upload_timestamp, is_flagged, flag_reason, upvotes, downvotes,
    comment_count, created_at`

func scanPicture(row pgx.Row) (model.Picture, error) {
	var p model.Picture
	err := row.Scan(
		&p.ID, &p.UserID, &p.Filename, &p.OriginalFilename, &p.MimeType,
		&p.FileSize, &p.Width, &p.Height, &p.Latitude, &p.Longitude,
		&p.H3Index, &p.ExifData, &p.UploadTimestamp, &p.IsFlagged,
		&p.FlagReason, &p.Upvotes, &p.Downvotes, &p.CommentCount, &p.CreatedAt,
	)
	return p, err
}

func (s *Store) InsertPicture(ctx context.Context, p model.Picture) (model.Picture, error) {
	query := `
        INSERT INTO pictures (
            user_id, filename, original_filename, mime_type, file_size,
            width, height, latitude, longitude, h3_index, exif_data
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING` + pictureColumns
	created, err := scanPicture(s.pool().QueryRow(ctx, query,
		p.UserID, p.Filename, p.OriginalFilename, p.MimeType, p.FileSize,
		p.Width, p.Height, p.Latitude, p.Longitude, p.H3Index, p.ExifData,
	))
	if err != nil {
		return model.Picture{}, asStoreErr(err)
	}
	return created, nil
}

func (s *Store) GetPictureByID(ctx context.Context, id int64) (model.Picture, error) {
	query := `SELECT` + pictureColumns + ` FROM pictures WHERE id = $1`
	p, err := scanPicture(s.pool().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Picture{}, ErrNotFound
	}
	if err != nil {
		return model.Picture{}, err
	}
	return p, nil
}

// ListPictures returns the public feed: flagged pictures excluded, optional
// H3 cell filter, newest upload first.
func (s *Store) ListPictures(ctx context.Context, params model.PictureFeedParams) ([]model.Picture, error) {
	query := `
        SELECT` + pictureColumns + `
        FROM pictures
        WHERE is_flagged = false
          AND ($1 = '' OR h3_index = $1)
        ORDER BY upload_timestamp DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := s.pool().Query(ctx, query, params.H3Index, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pictures []model.Picture
	for rows.Next() {
		p, err := scanPicture(rows)
		if err != nil {
			return nil, err
		}
		pictures = append(pictures, p)
	}
	return pictures, rows.Err()
}
