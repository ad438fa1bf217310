package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	matchRepo       domain.MatchRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	matchRepo domain.MatchRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		matchRepo:       matchRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Apply creates a pending application for a talent. Checks run in order and
// the first failure wins: id shape, job exists and is active, user exists
// and is a talent, no prior application for the pair.
func (uc *applicationUsecase) Apply(ctx context.Context, jobID, userID string) (*domain.Application, error) {
	// 1. Reject malformed ids before touching storage
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperror.BadRequest("Job ID must be a valid identifier")
	}

	// 2. Validate job exists and is active
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, uc.internal("apply", "fetch job", jobID, err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Job is no longer active")
	}

	// 3. Validate user exists and is a talent
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, uc.internal("apply", "fetch user", userID, err)
	}
	if !user.IsTalent() {
		return nil, apperror.Forbidden("Only talents can apply for jobs")
	}

	// 4. Check for duplicate application. This only produces the friendlier
	// error in the common case; the unique index is the real guarantee.
	existing, err := uc.applicationRepo.FindByJobAndUser(ctx, jobID, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, uc.internal("apply", "check duplicate", jobID, err)
	}
	if existing != nil {
		return nil, apperror.Conflict("You have already applied for this job")
	}

	// 5. Create application
	app := &domain.Application{
		JobID:  jobID,
		UserID: userID,
		Status: domain.ApplicationStatusPending,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// A concurrent apply slipped past the pre-check; the index caught it.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, uc.internal("apply", "create application", jobID, err)
	}

	created, err := uc.applicationRepo.GetByID(ctx, app.ID)
	if err != nil {
		// The write succeeded; return what we have rather than failing.
		return app, nil
	}
	return created, nil
}

// Review updates an application's status and, when the new status is
// matched, best-effort creates the corresponding match. The match outcome is
// reported separately and never fails the review itself.
func (uc *applicationUsecase) Review(ctx context.Context, applicationID, status, reviewerID string) (*domain.Application, domain.MatchOutcome, error) {
	// 1. Validate status
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.MatchOutcomeNone, apperror.BadRequest("Status must be one of: pending, matched, rejected, withdrawn")
	}

	// 2. Update status. Re-reviewing a terminal application is allowed; the
	// status is simply overwritten so admins can correct mistakes.
	app, err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status, reviewerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.MatchOutcomeNone, apperror.NotFound("Application not found")
		}
		return nil, domain.MatchOutcomeNone, uc.internal("review", "update status", applicationID, err)
	}

	// 3. Side effect: a matched review produces a match record, at most once
	outcome := domain.MatchOutcomeNone
	if status == domain.ApplicationStatusMatched {
		outcome = uc.ensureMatch(ctx, app, reviewerID)
	}

	return app, outcome, nil
}

// ensureMatch idempotently creates the match for a reviewed application.
// Failures are logged and reported through the outcome only.
func (uc *applicationUsecase) ensureMatch(ctx context.Context, app *domain.Application, reviewerID string) domain.MatchOutcome {
	existing, err := uc.matchRepo.FindByUserAndJob(ctx, app.UserID, app.JobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Log.Error("Failed to look up match during review",
			"application_id", app.ID, "job_id", app.JobID, "user_id", app.UserID, "error", err)
		return domain.MatchOutcomeFailed
	}
	if existing != nil {
		return domain.MatchOutcomeAlreadyMatched
	}

	match := &domain.Match{
		JobID:     app.JobID,
		UserID:    app.UserID,
		MatchedBy: reviewerID,
		Status:    domain.MatchStatusMatched,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.MatchOutcomeAlreadyMatched
		}
		logger.Log.Error("Failed to create match during review",
			"application_id", app.ID, "job_id", app.JobID, "user_id", app.UserID, "error", err)
		return domain.MatchOutcomeFailed
	}

	return domain.MatchOutcomeCreated
}

// CheckStatus reports whether a user has applied to a job. Pure read.
func (uc *applicationUsecase) CheckStatus(ctx context.Context, jobID, userID string) (*domain.ApplicationStatusCheck, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperror.BadRequest("Job ID must be a valid identifier")
	}

	app, err := uc.applicationRepo.FindByJobAndUser(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ApplicationStatusCheck{HasApplied: false, Application: nil}, nil
		}
		return nil, uc.internal("checkStatus", "fetch application", jobID, err)
	}

	return &domain.ApplicationStatusCheck{HasApplied: true, Application: app}, nil
}

// ListByUser returns all applications submitted by the given talent.
func (uc *applicationUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, uc.internal("listByUser", "fetch applications", userID, err)
	}
	return apps, nil
}

// ListAll returns one page of applications for the admin dashboard, newest
// first, optionally filtered by status.
func (uc *applicationUsecase) ListAll(ctx context.Context, status string, page, limit int) (*domain.ApplicationPage, error) {
	if status != "" && !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Status must be one of: pending, matched, rejected, withdrawn")
	}
	if page < 1 {
		return nil, apperror.BadRequest("Page must be at least 1")
	}
	if limit < 1 || limit > 100 {
		return nil, apperror.BadRequest("Limit must be between 1 and 100")
	}

	offset := (page - 1) * limit
	apps, total, err := uc.applicationRepo.FindAll(ctx, status, limit, offset)
	if err != nil {
		return nil, uc.internal("listAll", "fetch applications", status, err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &domain.ApplicationPage{
		Applications: apps,
		Total:        total,
		Page:         page,
		Pages:        pages,
	}, nil
}

// Stats aggregates application counts per status for the admin dashboard.
// Only the four known statuses are reported, each defaulting to zero.
func (uc *applicationUsecase) Stats(ctx context.Context) (*domain.ApplicationStats, error) {
	counts, err := uc.applicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, uc.internal("stats", "count by status", "", err)
	}

	stats := &domain.ApplicationStats{
		Pending:   counts[domain.ApplicationStatusPending],
		Matched:   counts[domain.ApplicationStatusMatched],
		Rejected:  counts[domain.ApplicationStatusRejected],
		Withdrawn: counts[domain.ApplicationStatusWithdrawn],
	}
	stats.Total = stats.Pending + stats.Matched + stats.Rejected + stats.Withdrawn
	return stats, nil
}

// internal logs an infrastructure failure with context and hides the detail
// from the caller.
func (uc *applicationUsecase) internal(op, step, id string, err error) error {
	logger.Log.Error("Application workflow failure",
		"operation", op, "step", step, "id", id, "error", err)
	return apperror.Internal(err)
}
