package postgres

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

const matchSelect = `
	SELECT m.id, m.job_id, m.user_id, m.matched_by, m.status, m.created_at,
	       j.title AS job_title,
	       j.location AS job_location,
	       u.name AS talent_name,
	       u.email AS talent_email,
	       mb.name AS matcher_name
	FROM matches m
	LEFT JOIN jobs j ON m.job_id = j.id
	LEFT JOIN users u ON m.user_id = u.id
	LEFT JOIN users mb ON m.matched_by = mb.id`

func (r *matchRepo) scanMatch(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Match, error) {
	var match domain.Match
	err := row.Scan(
		&match.ID, &match.JobID, &match.UserID, &match.MatchedBy, &match.Status, &match.CreatedAt,
		&match.JobTitle, &match.JobLocation, &match.TalentName, &match.TalentEmail, &match.MatcherName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &match, nil
}

// Create inserts a new match. The unique index on (job_id, user_id) maps a
// second match for the same pair to domain.ErrDuplicate.
func (r *matchRepo) Create(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO matches (job_id, user_id, matched_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	match.CreatedAt = time.Now()
	if match.Status == "" {
		match.Status = domain.MatchStatusMatched
	}

	err := r.db.QueryRow(ctx, query,
		match.JobID,
		match.UserID,
		match.MatchedBy,
		match.Status,
		match.CreatedAt,
	).Scan(&match.ID)
	return translateError(err)
}

func (r *matchRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*domain.Match, error) {
	query := matchSelect + ` WHERE m.user_id = $1 AND m.job_id = $2`
	return r.scanMatch(r.db.QueryRow(ctx, query, userID, jobID))
}

func (r *matchRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM matches WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	).Scan(&exists)
	return exists, translateError(err)
}

func (r *matchRepo) FindAll(ctx context.Context) ([]domain.Match, error) {
	return r.fetch(ctx, matchSelect+` ORDER BY m.created_at DESC`)
}

func (r *matchRepo) FindByJobID(ctx context.Context, jobID string) ([]domain.Match, error) {
	return r.fetch(ctx, matchSelect+` WHERE m.job_id = $1 ORDER BY m.created_at DESC`, jobID)
}

func (r *matchRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Match, error) {
	return r.fetch(ctx, matchSelect+` WHERE m.user_id = $1 ORDER BY m.created_at DESC`, userID)
}

func (r *matchRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Match, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		match, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}
