package postgres

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
	SELECT a.id, a.job_id, a.user_id, a.status, a.applied_at, a.reviewed_by, a.reviewed_at,
	       j.title AS job_title,
	       j.location AS job_location,
	       u.name AS applicant_name,
	       u.email AS applicant_email,
	       rv.name AS reviewer_name
	FROM applications a
	LEFT JOIN jobs j ON a.job_id = j.id
	LEFT JOIN users u ON a.user_id = u.id
	LEFT JOIN users rv ON a.reviewed_by = rv.id`

func (r *applicationRepo) scanApplication(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.JobID, &app.UserID, &app.Status, &app.AppliedAt, &app.ReviewedBy, &app.ReviewedAt,
		&app.JobTitle, &app.JobLocation, &app.ApplicantName, &app.ApplicantEmail, &app.ReviewerName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// Create inserts a new application. The unique index on (job_id, user_id)
// rejects a second application for the same pair; that surfaces here as
// domain.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, user_id, status, applied_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.UserID,
		app.Status,
		app.AppliedAt,
	).Scan(&app.ID)
	return translateError(err)
}

// GetByID retrieves an application by ID with joined job and user data
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id = $1`
	return r.scanApplication(r.db.QueryRow(ctx, query, id))
}

// FindByJobAndUser retrieves the application for a (job, user) pair, or
// domain.ErrNotFound when the user has not applied.
func (r *applicationRepo) FindByJobAndUser(ctx context.Context, jobID, userID string) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.job_id = $1 AND a.user_id = $2`
	return r.scanApplication(r.db.QueryRow(ctx, query, jobID, userID))
}

// FindAll retrieves applications sorted by applied_at descending, optionally
// filtered by status, with the total count for pagination.
func (r *applicationRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]domain.Application, int64, error) {
	query := applicationSelect + `
	WHERE ($1 = '' OR a.status = $1)
	ORDER BY a.applied_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := r.scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM applications WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	return applications, total, nil
}

// FindByUserID retrieves all applications submitted by a user, newest first.
func (r *applicationRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := applicationSelect + `
	WHERE a.user_id = $1
	ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := r.scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// UpdateStatus sets the status, reviewer and review time, returning the
// updated application with joins, or domain.ErrNotFound.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status, reviewedBy string) (*domain.Application, error) {
	query := `
		UPDATE applications
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, reviewedBy, time.Now())
	if err != nil {
		return nil, translateError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// CountByStatus aggregates application counts grouped by status.
func (r *applicationRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, translateError(err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
