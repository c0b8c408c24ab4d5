// Package moderation owns the vote ledger, report intake and the report
// lifecycle, including the auto-flag policy that hides content once enough
// pending reports accumulate against it.
package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/pinspot/pinspot_api/internal/model"
	"go.uber.org/zap"
)

// DefaultFlagThreshold is the pending-report count at which content is
// auto-flagged. Overridable via config (REPORT_FLAG_THRESHOLD).
const DefaultFlagThreshold = 3

// ErrInvalidStatus rejects resolution statuses outside {reviewed, dismissed};
// a report can never be moved back to pending.
var ErrInvalidStatus = errors.New("status must be reviewed or dismissed")

// ContentStore is the view of the content subsystem the core depends on:
// point lookups plus tally and flag field updates on pictures and comments.
type ContentStore interface {
	GetTarget(ctx context.Context, ref model.TargetRef) (model.Target, error)
	SetTallies(ctx context.Context, ref model.TargetRef, upvotes, downvotes int) error
	SetFlag(ctx context.Context, ref model.TargetRef, flagged bool, reason *string) error
}

// VoteStore persists the vote ledger rows.
type VoteStore interface {
	FindVote(ctx context.Context, userID int64, ref model.TargetRef) (model.Vote, error)
	InsertVote(ctx context.Context, vote model.Vote) (model.Vote, error)
	UpdateVote(ctx context.Context, id int64, voteType string, at time.Time) (model.Vote, error)
	CountVotes(ctx context.Context, ref model.TargetRef) (upvotes, downvotes int, err error)
}

// ReportStore persists report rows.
type ReportStore interface {
	InsertReport(ctx context.Context, report model.Report) (model.Report, error)
	GetReport(ctx context.Context, id int64) (model.Report, error)
	UpdateReportStatus(ctx context.Context, id int64, status string, adminNotes *string, reviewedAt time.Time) (model.Report, error)
	CountPendingReports(ctx context.Context, ref model.TargetRef) (int, error)
}

// Publisher receives domain events for fan-out to live subscribers.
type Publisher interface {
	Publish(eventType string, payload interface{})
}

type Service struct {
	content ContentStore
	votes   VoteStore
	reports ReportStore

	threshold int
	events    Publisher
	log       *zap.SugaredLogger

	locks targetLocks
}

type Option func(*Service)

// WithFlagThreshold overrides the pending-report count that triggers
// auto-flagging.
func WithFlagThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.threshold = n
		}
	}
}

// WithPublisher attaches an event publisher; without one events are dropped.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.events = p }
}

func New(content ContentStore, votes VoteStore, reports ReportStore, log *zap.SugaredLogger, opts ...Option) *Service {
	s := &Service{
		content:   content,
		votes:     votes,
		reports:   reports,
		threshold: DefaultFlagThreshold,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(eventType string, payload interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, payload)
	}
}
