package domain

import (
	"context"
	"time"
)

// Application status constants. An application starts pending and moves to
// one of the other three states through an admin review.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusMatched   = "matched"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// ValidApplicationStatus reports whether s is one of the four known states.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusMatched,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application represents a talent's application to a job. Job and user are
// referenced by id only; the joined fields are populated on reads.
type Application struct {
	ID         string     `json:"id"`
	JobID      string     `json:"job_id"`
	UserID     string     `json:"user_id"`
	Status     string     `json:"status"`
	AppliedAt  time.Time  `json:"applied_at"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	// Joined data for list responses
	JobTitle       *string `json:"job_title,omitempty"`
	JobLocation    *string `json:"job_location,omitempty"`
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	ReviewerName   *string `json:"reviewer_name,omitempty"`
}

// ApplicationStatusCheck is the talent-facing answer to "have I applied?".
type ApplicationStatusCheck struct {
	HasApplied  bool         `json:"hasApplied"`
	Application *Application `json:"application"`
}

// ApplicationPage is one page of the admin application listing.
type ApplicationPage struct {
	Applications []Application `json:"applications"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	Pages        int           `json:"pages"`
}

// ApplicationStats aggregates application counts per status. Only the four
// known statuses are reported; absent statuses stay zero.
type ApplicationStats struct {
	Pending   int64 `json:"pending"`
	Matched   int64 `json:"matched"`
	Rejected  int64 `json:"rejected"`
	Withdrawn int64 `json:"withdrawn"`
	Total     int64 `json:"total"`
}

// MatchOutcome reports the secondary, best-effort result of a review that
// set an application to matched. It never affects the review's own success.
type MatchOutcome string

const (
	MatchOutcomeNone           MatchOutcome = "none"
	MatchOutcomeCreated        MatchOutcome = "created"
	MatchOutcomeAlreadyMatched MatchOutcome = "already_matched"
	MatchOutcomeFailed         MatchOutcome = "failed"
)

// ApplicationRepository defines data access methods for applications.
// Create must reject a second application for the same (job, user) pair with
// ErrDuplicate; the storage layer's unique index is the real guard against
// concurrent applies, not the usecase pre-check.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	FindByJobAndUser(ctx context.Context, jobID, userID string) (*Application, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]Application, int64, error)
	FindByUserID(ctx context.Context, userID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status, reviewedBy string) (*Application, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// ApplicationUsecase defines the application workflow business logic.
type ApplicationUsecase interface {
	// Talent operations
	Apply(ctx context.Context, jobID, userID string) (*Application, error)
	CheckStatus(ctx context.Context, jobID, userID string) (*ApplicationStatusCheck, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)

	// Admin operations
	Review(ctx context.Context, applicationID, status, reviewerID string) (*Application, MatchOutcome, error)
	ListAll(ctx context.Context, status string, page, limit int) (*ApplicationPage, error)
	Stats(ctx context.Context) (*ApplicationStats, error)
}
