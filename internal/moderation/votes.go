package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/internal/store"
)

// castAttempts bounds retries when a concurrent write collides with ours.
const castAttempts = 3

// Cast records a user's vote on a target. A first vote inserts a row; a
// repeated vote replaces the existing row's type and timestamp, so at most
// one vote per (user, target) exists at any time. After the write both
// tallies are recomputed from the full vote set and persisted onto the
// target. Returns store.ErrNotFound when the target does not exist.
func (s *Service) Cast(ctx context.Context, userID int64, ref model.TargetRef, voteType string) (model.Vote, error) {
	unlock := s.locks.lock(ref)
	defer unlock()

	var vote model.Vote
	var err error
	for attempt := 1; attempt <= castAttempts; attempt++ {
		vote, err = s.castOnce(ctx, userID, ref, voteType)
		if !errors.Is(err, store.ErrConflict) {
			return vote, err
		}
		s.log.Warnw("vote hit a concurrent write, retrying",
			"user_id", userID, "target", ref.String(), "attempt", attempt)
	}
	return model.Vote{}, err
}

func (s *Service) castOnce(ctx context.Context, userID int64, ref model.TargetRef, voteType string) (model.Vote, error) {
	if _, err := s.content.GetTarget(ctx, ref); err != nil {
		return model.Vote{}, err
	}

	var vote model.Vote
	existing, err := s.votes.FindVote(ctx, userID, ref)
	switch {
	case err == nil:
		vote, err = s.votes.UpdateVote(ctx, existing.ID, voteType, time.Now())
		if err != nil {
			return model.Vote{}, err
		}
	case errors.Is(err, store.ErrNotFound):
		fresh := model.Vote{UserID: userID, VoteType: voteType}
		if id, ok := ref.PictureID(); ok {
			fresh.PictureID = &id
		}
		if id, ok := ref.CommentID(); ok {
			fresh.CommentID = &id
		}
		vote, err = s.votes.InsertVote(ctx, fresh)
		if err != nil {
			return model.Vote{}, err
		}
	default:
		return model.Vote{}, err
	}

	// Recount from the vote rows rather than adjusting counters; the tallies
	// can then never drift from the ledger.
	upvotes, downvotes, err := s.votes.CountVotes(ctx, ref)
	if err != nil {
		return model.Vote{}, err
	}
	if err := s.content.SetTallies(ctx, ref, upvotes, downvotes); err != nil {
		return model.Vote{}, err
	}

	s.publish("vote.tallied", map[string]interface{}{
		"target":    ref,
		"upvotes":   upvotes,
		"downvotes": downvotes,
	})
	return vote, nil
}
