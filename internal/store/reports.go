package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pinspot/pinspot_api/internal/model"
)

const reportColumns = `
    id, reporter_user_id, picture_id, comment_id, reason, description,
    status, admin_notes, created_at, reviewed_at`

func scanReport(row pgx.Row) (model.Report, error) {
	var r model.Report
	err := row.Scan(
		&r.ID, &r.ReporterUserID, &r.PictureID, &r.CommentID, &r.Reason,
		&r.Description, &r.Status, &r.AdminNotes, &r.CreatedAt, &r.ReviewedAt,
	)
	return r, err
}

func (s *Store) InsertReport(ctx context.Context, report model.Report) (model.Report, error) {
	query := `
        INSERT INTO reports (reporter_user_id, picture_id, comment_id, reason, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING` + reportColumns
	created, err := scanReport(s.pool().QueryRow(ctx, query,
		report.ReporterUserID, report.PictureID, report.CommentID,
		report.Reason, report.Description,
	))
	if err != nil {
		return model.Report{}, asStoreErr(err)
	}
	return created, nil
}

func (s *Store) GetReport(ctx context.Context, id int64) (model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE id = $1`
	r, err := scanReport(s.pool().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, ErrNotFound
	}
	if err != nil {
		return model.Report{}, err
	}
	return r, nil
}

// UpdateReportStatus writes the resolution unconditionally; a report already
// out of pending gets its status, notes and review time overwritten.
func (s *Store) UpdateReportStatus(ctx context.Context, id int64, status string, adminNotes *string, reviewedAt time.Time) (model.Report, error) {
	query := `
        UPDATE reports
        SET status = $1, admin_notes = $2, reviewed_at = $3
        WHERE id = $4
        RETURNING` + reportColumns
	r, err := scanReport(s.pool().QueryRow(ctx, query, status, adminNotes, reviewedAt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, ErrNotFound
	}
	if err != nil {
		return model.Report{}, asStoreErr(err)
	}
	return r, nil
}

// CountPendingReports counts reports still pending against one target.
func (s *Store) CountPendingReports(ctx context.Context, ref model.TargetRef) (int, error) {
	query := fmt.Sprintf(`
        SELECT COUNT(*) FROM reports WHERE status = 'pending' AND %s = $1
    `, targetColumn(ref))

	var count int
	if err := s.pool().QueryRow(ctx, query, ref.ID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListReports returns every report, newest first, for the admin queue.
func (s *Store) ListReports(ctx context.Context) ([]model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports ORDER BY created_at DESC`
	rows, err := s.pool().Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
