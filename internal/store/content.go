package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

// targetTable maps a target kind onto its table. Both tables carry the same
// tally and flag columns.
func targetTable(ref model.TargetRef) string {
	if ref.Kind == model.TargetPicture {
		return "pictures"
	}
	return "comments"
}

// GetTarget loads the moderation-relevant fields of a picture or comment.
func (s *Store) GetTarget(ctx context.Context, ref model.TargetRef) (model.Target, error) {
	query := fmt.Sprintf(`
        SELECT upvotes, downvotes, is_flagged, flag_reason
        FROM %s WHERE id = $1
    `, targetTable(ref))

	target := model.Target{Ref: ref}
	err := s.pool().QueryRow(ctx, query, ref.ID).Scan(
		&target.Upvotes, &target.Downvotes, &target.IsFlagged, &target.FlagReason,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Target{}, ErrNotFound
	}
	if err != nil {
		return model.Target{}, err
	}
	return target, nil
}

// SetTallies persists recomputed vote counts onto the target row.
func (s *Store) SetTallies(ctx context.Context, ref model.TargetRef, upvotes, downvotes int) error {
	query := fmt.Sprintf(`
        UPDATE %s SET upvotes = $1, downvotes = $2 WHERE id = $3
    `, targetTable(ref))

	result, err := s.pool().Exec(ctx, query, upvotes, downvotes, ref.ID)
	if err != nil {
		return asStoreErr(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetFlag writes the visibility flag and reason onto the target row.
// Flagging an already-flagged target overwrites the reason.
func (s *Store) SetFlag(ctx context.Context, ref model.TargetRef, flagged bool, reason *string) error {
	query := fmt.Sprintf(`
        UPDATE %s SET is_flagged = $1, flag_reason = $2 WHERE id = $3
    `, targetTable(ref))

	result, err := s.pool().Exec(ctx, query, flagged, reason, ref.ID)
	if err != nil {
		return asStoreErr(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
