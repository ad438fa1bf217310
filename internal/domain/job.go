package domain

import (
	"context"
	"time"
)

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	RequiredSkills []string  `json:"required_skills"`
	IsActive       bool      `json:"is_active"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined data for list responses
	CreatorName *string `json:"creator_name,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	FetchActive(ctx context.Context, limit, offset int) ([]Job, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, createdBy string, job *Job) error
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	DeactivateJob(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error
}
