package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

const commentColumns = `
    id, picture_id, user_id, content, upvotes, downvotes,
    is_flagged, flag_reason, created_at`

func scanComment(row pgx.Row) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID, &c.PictureID, &c.UserID, &c.Content, &c.Upvotes, &c.Downvotes,
		&c.IsFlagged, &c.FlagReason, &c.CreatedAt,
	)
	return c, err
}

// CreateComment inserts a comment and bumps the picture's comment_count in
// one transaction, so the counter cannot drift from the rows.
func (s *Store) CreateComment(ctx context.Context, c model.Comment) (model.Comment, error) {
	var created model.Comment
	err := s.db.RunInTx(ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO comments (picture_id, user_id, content)
            VALUES ($1, $2, $3)
            RETURNING` + commentColumns
		var err error
		created, err = scanComment(tx.QueryRow(ctx, query, c.PictureID, c.UserID, c.Content))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE pictures SET comment_count = comment_count + 1 WHERE id = $1`,
			c.PictureID)
		return err
	})
	if err != nil {
		return model.Comment{}, asStoreErr(err)
	}
	return created, nil
}

func (s *Store) GetCommentByID(ctx context.Context, id int64) (model.Comment, error) {
	query := `SELECT` + commentColumns + ` FROM comments WHERE id = $1`
	c, err := scanComment(s.pool().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// ListComments returns a picture's comments, flagged excluded, newest first.
func (s *Store) ListComments(ctx context.Context, pictureID int64, limit, offset int) ([]model.Comment, error) {
	query := `
        SELECT` + commentColumns + `
        FROM comments
        WHERE picture_id = $1 AND is_flagged = false
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := s.pool().Query(ctx, query, pictureID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
