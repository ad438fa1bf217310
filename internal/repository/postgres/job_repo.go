package postgres

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, description, location, required_skills, is_active, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	job.CreatedAt = time.Now()
	job.IsActive = true

	err := r.db.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		pq.Array(job.RequiredSkills),
		job.IsActive,
		job.CreatedBy,
		job.CreatedAt,
	).Scan(&job.ID)
	return translateError(err)
}

// GetByID retrieves a job with its creator's name joined in.
func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.description, j.location, j.required_skills,
		       j.is_active, j.created_by, j.created_at,
		       u.name AS creator_name
		FROM jobs j
		LEFT JOIN users u ON j.created_by = u.id
		WHERE j.id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, pq.Array(&job.RequiredSkills),
		&job.IsActive, &job.CreatedBy, &job.CreatedAt,
		&job.CreatorName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

// FetchActive lists active jobs newest first with the total active count.
func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT j.id, j.title, j.description, j.location, j.required_skills,
		       j.is_active, j.created_by, j.created_at,
		       u.name AS creator_name
		FROM jobs j
		LEFT JOIN users u ON j.created_by = u.id
		WHERE j.is_active = TRUE
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Location, pq.Array(&job.RequiredSkills),
			&job.IsActive, &job.CreatedBy, &job.CreatedAt,
			&job.CreatorName,
		); err != nil {
			return nil, 0, translateError(err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	return jobs, total, nil
}

func (r *jobRepo) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
