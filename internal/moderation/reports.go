package moderation

import (
	"context"
	"fmt"

	"github.com/pinspot/pinspot_api/internal/model"
)

// File records a report against a target and then evaluates the auto-flag
// policy. The report is created in pending status; it stays pending even when
// the policy hides the content, since visibility and review are independent.
// Returns store.ErrNotFound when the target does not exist.
func (s *Service) File(ctx context.Context, reporterID int64, ref model.TargetRef, reason string, description *string) (model.Report, error) {
	unlock := s.locks.lock(ref)
	defer unlock()

	if _, err := s.content.GetTarget(ctx, ref); err != nil {
		return model.Report{}, err
	}

	fresh := model.Report{
		ReporterUserID: reporterID,
		Reason:         reason,
		Description:    description,
		Status:         model.ReportPending,
	}
	if id, ok := ref.PictureID(); ok {
		fresh.PictureID = &id
	}
	if id, ok := ref.CommentID(); ok {
		fresh.CommentID = &id
	}

	report, err := s.reports.InsertReport(ctx, fresh)
	if err != nil {
		return model.Report{}, err
	}

	// Best effort: a failed evaluation must not fail the created report.
	if err := s.evaluateAutoFlag(ctx, ref); err != nil {
		s.log.Errorw("auto-flag evaluation failed",
			"target", ref.String(), "report_id", report.ID, "error", err)
	}

	s.publish("report.filed", map[string]interface{}{
		"report_id": report.ID,
		"target":    ref,
		"reason":    reason,
	})
	return report, nil
}

// evaluateAutoFlag hides a target once the number of pending reports against
// it reaches the threshold.
func (s *Service) evaluateAutoFlag(ctx context.Context, ref model.TargetRef) error {
	count, err := s.reports.CountPendingReports(ctx, ref)
	if err != nil {
		return err
	}
	if count < s.threshold {
		return nil
	}
	return s.flagTarget(ctx, ref, fmt.Sprintf("Auto-flagged: %d reports received", count))
}
