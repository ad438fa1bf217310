package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, createdBy string, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if job.Location == "" {
		return apperror.BadRequest("Location is required")
	}
	if len(job.RequiredSkills) == 0 {
		return apperror.BadRequest("At least one required skill must be provided")
	}

	job.CreatedBy = createdBy
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.BadRequest("Job ID must be a valid identifier")
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListActiveJobs returns only active jobs. Server-side filtering; the
// client cannot opt out.
func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchActive(ctx, pageSize, offset)
}

// DeactivateJob flips a job inactive. Inactive jobs reject new applications
// but keep their history; deletion is a separate administrative action.
func (u *jobUsecase) DeactivateJob(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Job ID must be a valid identifier")
	}
	if err := u.jobRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Job ID must be a valid identifier")
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
