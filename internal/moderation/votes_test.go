package moderation

import (
	"context"
	"sync"
	"testing"

	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(m *memStore, opts ...Option) *Service {
	return New(m, m, m, zap.NewNop().Sugar(), opts...)
}

func pictureRef(id int64) model.TargetRef {
	return model.TargetRef{Kind: model.TargetPicture, ID: id}
}

func commentRef(id int64) model.TargetRef {
	return model.TargetRef{Kind: model.TargetComment, ID: id}
}

func TestCastFirstVote(t *testing.T) {
	m := newMemStore()
	ref := pictureRef(1)
	m.addTarget(ref)
	svc := newTestService(m)

	vote, err := svc.Cast(context.Background(), 7, ref, model.VoteUpvote)
	require.NoError(t, err)
	assert.Equal(t, model.VoteUpvote, vote.VoteType)
	require.NotNil(t, vote.PictureID)
	assert.EqualValues(t, 1, *vote.PictureID)
	assert.Nil(t, vote.CommentID)

	target := m.target(ref)
	assert.Equal(t, 1, target.Upvotes)
	assert.Equal(t, 0, target.Downvotes)
}

func TestCastSameTypeTwiceLeavesTalliesUnchanged(t *testing.T) {
	m := newMemStore()
	ref := pictureRef(1)
	m.addTarget(ref)
	svc := newTestService(m)

	_, err := svc.Cast(context.Background(), 7, ref, model.VoteUpvote)
	require.NoError(t, err)
	_, err = svc.Cast(context.Background(), 7, ref, model.VoteUpvote)
	require.NoError(t, err)

	target := m.target(ref)
	assert.Equal(t, 1, target.Upvotes)
	assert.Equal(t, 0, target.Downvotes)
	assert.Equal(t, 1, m.voteCount(), "repeat vote must not create a second row")
}

func TestCastFlipNetsTallies(t *testing.T) {
	m := newMemStore()
	ref := commentRef(42)
	m.addTarget(ref)
	svc := newTestService(m)

	_, err := svc.Cast(context.Background(), 7, ref, model.VoteUpvote)
	require.NoError(t, err)
	target := m.target(ref)
	assert.Equal(t, 1, target.Upvotes)
	assert.Equal(t, 0, target.Downvotes)

	vote, err := svc.Cast(context.Background(), 7, ref, model.VoteDownvote)
	require.NoError(t, err)
	assert.Equal(t, model.VoteDownvote, vote.VoteType)

	target = m.target(ref)
	assert.Equal(t, 0, target.Upvotes, "stale upvote must not linger after a flip")
	assert.Equal(t, 1, target.Downvotes)
	assert.Equal(t, 1, m.voteCount())
}

func TestCastTargetNotFound(t *testing.T) {
	m := newMemStore()
	svc := newTestService(m)

	_, err := svc.Cast(context.Background(), 7, pictureRef(99), model.VoteUpvote)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, 0, m.voteCount(), "no vote row on a missing target")
}

func TestCastTwoUsersIndependent(t *testing.T) {
	m := newMemStore()
	ref := pictureRef(1)
	m.addTarget(ref)
	svc := newTestService(m)

	_, err := svc.Cast(context.Background(), 1, ref, model.VoteUpvote)
	require.NoError(t, err)
	_, err = svc.Cast(context.Background(), 2, ref, model.VoteDownvote)
	require.NoError(t, err)

	target := m.target(ref)
	assert.Equal(t, 1, target.Upvotes)
	assert.Equal(t, 1, target.Downvotes)
	assert.Equal(t, 2, m.voteCount())
}

func TestCastDoesNotCrossTargets(t *testing.T) {
	m := newMemStore()
	picture := pictureRef(1)
	comment := commentRef(1)
	m.addTarget(picture)
	m.addTarget(comment)
	svc := newTestService(m)

	_, err := svc.Cast(context.Background(), 7, picture, model.VoteUpvote)
	require.NoError(t, err)
	_, err = svc.Cast(context.Background(), 7, comment, model.VoteDownvote)
	require.NoError(t, err)

	assert.Equal(t, 1, m.target(picture).Upvotes)
	assert.Equal(t, 0, m.target(picture).Downvotes)
	assert.Equal(t, 0, m.target(comment).Upvotes)
	assert.Equal(t, 1, m.target(comment).Downvotes)
	assert.Equal(t, 2, m.voteCount(), "same id on different kinds is two targets")
}

// Concurrent casts on one target must keep tallies equal to the ledger.
func TestCastConcurrentKeepsTallyInvariant(t *testing.T) {
	m := newMemStore()
	ref := pictureRef(1)
	m.addTarget(ref)
	svc := newTestService(m)

	const users = 32
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			voteType := model.VoteUpvote
			if userID%2 == 0 {
				voteType = model.VoteDownvote
			}
			_, err := svc.Cast(context.Background(), userID, ref, voteType)
			assert.NoError(t, err)
			// every user flips once
			flip := model.VoteUpvote
			if voteType == model.VoteUpvote {
				flip = model.VoteDownvote
			}
			_, err = svc.Cast(context.Background(), userID, ref, flip)
			assert.NoError(t, err)
		}(int64(i + 1))
	}
	wg.Wait()

	up, down, err := m.CountVotes(context.Background(), ref)
	require.NoError(t, err)
	target := m.target(ref)
	assert.Equal(t, up, target.Upvotes)
	assert.Equal(t, down, target.Downvotes)
	assert.Equal(t, users, m.voteCount(), "one row per user after any number of flips")
}
