package moderation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/internal/store"
)

// memStore is an in-memory stand-in for the Postgres store, implementing the
// three interfaces the service consumes.
type memStore struct {
	mu sync.Mutex

	targets map[model.TargetRef]*model.Target
	votes   map[int64]*model.Vote
	reports map[int64]*model.Report

	nextVoteID   int64
	nextReportID int64

	// failure injection
	countPendingErr error
	setFlagErr      error
}

func newMemStore() *memStore {
	return &memStore{
		targets: make(map[model.TargetRef]*model.Target),
		votes:   make(map[int64]*model.Vote),
		reports: make(map[int64]*model.Report),
	}
}

func (m *memStore) addTarget(ref model.TargetRef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets[ref] = &model.Target{Ref: ref}
}

func (m *memStore) target(ref model.TargetRef) model.Target {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.targets[ref]
}

func (m *memStore) voteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.votes)
}

func (m *memStore) GetTarget(_ context.Context, ref model.TargetRef) (model.Target, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.targets[ref]
	if !ok {
		return model.Target{}, store.ErrNotFound
	}
	return *t, nil
}

func (m *memStore) SetTallies(_ context.Context, ref model.TargetRef, upvotes, downvotes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.targets[ref]
	if !ok {
		return store.ErrNotFound
	}
	t.Upvotes = upvotes
	t.Downvotes = downvotes
	return nil
}

func (m *memStore) SetFlag(_ context.Context, ref model.TargetRef, flagged bool, reason *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setFlagErr != nil {
		return m.setFlagErr
	}
	t, ok := m.targets[ref]
	if !ok {
		return store.ErrNotFound
	}
	t.IsFlagged = flagged
	t.FlagReason = reason
	return nil
}

func sameTarget(v *model.Vote, ref model.TargetRef) bool {
	target, err := v.Target()
	return err == nil && target == ref
}

func (m *memStore) FindVote(_ context.Context, userID int64, ref model.TargetRef) (model.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.votes {
		if v.UserID == userID && sameTarget(v, ref) {
			return *v, nil
		}
	}
	return model.Vote{}, store.ErrNotFound
}

func (m *memStore) InsertVote(_ context.Context, vote model.Vote) (model.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextVoteID++
	vote.ID = m.nextVoteID
	vote.CreatedAt = time.Now()
	m.votes[vote.ID] = &vote
	return vote, nil
}

func (m *memStore) UpdateVote(_ context.Context, id int64, voteType string, at time.Time) (model.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.votes[id]
	if !ok {
		return model.Vote{}, store.ErrNotFound
	}
	v.VoteType = voteType
	v.CreatedAt = at
	return *v, nil
}

func (m *memStore) CountVotes(_ context.Context, ref model.TargetRef) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var up, down int
	for _, v := range m.votes {
		if !sameTarget(v, ref) {
			continue
		}
		if v.VoteType == model.VoteUpvote {
			up++
		} else {
			down++
		}
	}
	return up, down, nil
}

func (m *memStore) InsertReport(_ context.Context, report model.Report) (model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextReportID++
	report.ID = m.nextReportID
	report.CreatedAt = time.Now()
	m.reports[report.ID] = &report
	return report, nil
}

func (m *memStore) GetReport(_ context.Context, id int64) (model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return model.Report{}, store.ErrNotFound
	}
	return *r, nil
}

func (m *memStore) UpdateReportStatus(_ context.Context, id int64, status string, adminNotes *string, reviewedAt time.Time) (model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return model.Report{}, store.ErrNotFound
	}
	r.Status = status
	r.AdminNotes = adminNotes
	r.ReviewedAt = &reviewedAt
	return *r, nil
}

func (m *memStore) CountPendingReports(_ context.Context, ref model.TargetRef) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countPendingErr != nil {
		return 0, m.countPendingErr
	}
	var count int
	for _, r := range m.reports {
		if r.Status != model.ReportPending {
			continue
		}
		target, err := r.Target()
		if err == nil && target == ref {
			count++
		}
	}
	return count, nil
}

var errInjected = errors.New("injected store failure")
