package moderation

import (
	"context"
	"time"

	"github.com/pinspot/pinspot_api/internal/model"
)

// Resolve moves a report to reviewed or dismissed. The write is
// unconditional: resolving an already-resolved report overwrites its status,
// notes and review time. A reviewed report flags its target with the
// report's own reason; a dismissed one touches no content state.
func (s *Service) Resolve(ctx context.Context, reportID int64, status string, adminNotes *string) (model.Report, error) {
	if status != model.ReportReviewed && status != model.ReportDismissed {
		return model.Report{}, ErrInvalidStatus
	}

	report, err := s.reports.GetReport(ctx, reportID)
	if err != nil {
		return model.Report{}, err
	}

	updated, err := s.reports.UpdateReportStatus(ctx, reportID, status, adminNotes, time.Now())
	if err != nil {
		return model.Report{}, err
	}

	if status == model.ReportReviewed {
		ref, err := report.Target()
		if err != nil {
			return model.Report{}, err
		}
		if err := s.flagTarget(ctx, ref, report.Reason); err != nil {
			return model.Report{}, err
		}
	}

	s.publish("report.resolved", map[string]interface{}{
		"report_id": updated.ID,
		"status":    updated.Status,
	})
	return updated, nil
}
