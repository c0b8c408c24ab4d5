package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

const voteColumns = `id, user_id, picture_id, comment_id, vote_type, created_at`

func scanVote(row pgx.Row) (model.Vote, error) {
	var v model.Vote
	err := row.Scan(&v.ID, &v.UserID, &v.PictureID, &v.CommentID, &v.VoteType, &v.CreatedAt)
	return v, err
}

// targetColumn names the vote/report column holding the target id.
func targetColumn(ref model.TargetRef) string {
	if ref.Kind == model.TargetPicture {
		return "picture_id"
	}
	return "comment_id"
}

// FindVote returns the single existing vote for (user, target), or
// ErrNotFound when the user has not voted on that target.
func (s *Store) FindVote(ctx context.Context, userID int64, ref model.TargetRef) (model.Vote, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM votes WHERE user_id = $1 AND %s = $2
    `, voteColumns, targetColumn(ref))

	v, err := scanVote(s.pool().QueryRow(ctx, query, userID, ref.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Vote{}, ErrNotFound
	}
	if err != nil {
		return model.Vote{}, err
	}
	return v, nil
}

func (s *Store) InsertVote(ctx context.Context, vote model.Vote) (model.Vote, error) {
	query := `
        INSERT INTO votes (user_id, picture_id, comment_id, vote_type)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + voteColumns
	created, err := scanVote(s.pool().QueryRow(ctx, query,
		vote.UserID, vote.PictureID, vote.CommentID, vote.VoteType,
	))
	if err != nil {
		return model.Vote{}, asStoreErr(err)
	}
	return created, nil
}

// UpdateVote replaces the type and timestamp of an existing vote in place.
func (s *Store) UpdateVote(ctx context.Context, id int64, voteType string, at time.Time) (model.Vote, error) {
	query := `
        UPDATE votes SET vote_type = $1, created_at = $2 WHERE id = $3
        RETURNING ` + voteColumns
	updated, err := scanVote(s.pool().QueryRow(ctx, query, voteType, at, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Vote{}, ErrNotFound
	}
	if err != nil {
		return model.Vote{}, asStoreErr(err)
	}
	return updated, nil
}

// CountVotes recomputes both tallies from the vote rows for a target.
func (s *Store) CountVotes(ctx context.Context, ref model.TargetRef) (upvotes, downvotes int, err error) {
	query := fmt.Sprintf(`
        SELECT
            COUNT(*) FILTER (WHERE vote_type = 'upvote'),
            COUNT(*) FILTER (WHERE vote_type = 'downvote')
        FROM votes WHERE %s = $1
    `, targetColumn(ref))

	err = s.pool().QueryRow(ctx, query, ref.ID).Scan(&upvotes, &downvotes)
	if err != nil {
		return 0, 0, err
	}
	return upvotes, downvotes, nil
}
