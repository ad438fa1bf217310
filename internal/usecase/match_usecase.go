package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/google/uuid"
)

type matchUsecase struct {
	matchRepo domain.MatchRepository
	jobRepo   domain.JobRepository
	userRepo  domain.UserRepository
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(
	matchRepo domain.MatchRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.MatchUsecase {
	return &matchUsecase{
		matchRepo: matchRepo,
		jobRepo:   jobRepo,
		userRepo:  userRepo,
	}
}

// CreateMatch is the admin-initiated direct matching path. It enforces the
// same role and uniqueness invariants as the application-triggered path:
// input shape, user exists and is a talent, job exists and is active, no
// existing match for the pair.
func (uc *matchUsecase) CreateMatch(ctx context.Context, userID, jobID, matchedBy, status string) (*domain.Match, error) {
	// 1. Input shape
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperror.BadRequest("User ID must be a valid identifier")
	}
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperror.BadRequest("Job ID must be a valid identifier")
	}
	if status == "" {
		status = domain.MatchStatusMatched
	}
	if !domain.ValidMatchStatus(status) {
		return nil, apperror.BadRequest("Status must be one of: matched, viewed, applied")
	}

	// 2. User exists and is a talent
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, uc.internal("createMatch", "fetch user", userID, err)
	}
	if !user.IsTalent() {
		return nil, apperror.BadRequest("Only talent users can be matched to jobs")
	}

	// 3. Job exists and is active
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, uc.internal("createMatch", "fetch job", jobID, err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Cannot match to inactive job")
	}

	// 4. No existing match. Friendlier-message pre-check only; the unique
	// index backs the invariant under concurrency.
	exists, err := uc.matchRepo.Exists(ctx, userID, jobID)
	if err != nil {
		return nil, uc.internal("createMatch", "check existing", jobID, err)
	}
	if exists {
		return nil, apperror.Conflict("User is already matched to this job")
	}

	// 5. Create the match
	match := &domain.Match{
		JobID:     jobID,
		UserID:    userID,
		MatchedBy: matchedBy,
		Status:    status,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("User is already matched to this job")
		}
		return nil, uc.internal("createMatch", "create match", jobID, err)
	}

	created, err := uc.matchRepo.FindByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return match, nil
	}
	return created, nil
}

func (uc *matchUsecase) ListAll(ctx context.Context) ([]domain.Match, error) {
	matches, err := uc.matchRepo.FindAll(ctx)
	if err != nil {
		return nil, uc.internal("listAll", "fetch matches", "", err)
	}
	return matches, nil
}

// ListByJob returns matches for a job. The job must exist.
func (uc *matchUsecase) ListByJob(ctx context.Context, jobID string) ([]domain.Match, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperror.BadRequest("Job ID must be a valid identifier")
	}
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, uc.internal("listByJob", "fetch job", jobID, err)
	}

	matches, err := uc.matchRepo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, uc.internal("listByJob", "fetch matches", jobID, err)
	}
	return matches, nil
}

// ListByUser returns matches for a user. The user must exist.
func (uc *matchUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Match, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperror.BadRequest("User ID must be a valid identifier")
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, uc.internal("listByUser", "fetch user", userID, err)
	}

	matches, err := uc.matchRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, uc.internal("listByUser", "fetch matches", userID, err)
	}
	return matches, nil
}

// ListForTalent returns the authenticated talent's own matches without the
// existence check; the caller is the user.
func (uc *matchUsecase) ListForTalent(ctx context.Context, userID string) ([]domain.Match, error) {
	matches, err := uc.matchRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, uc.internal("listForTalent", "fetch matches", userID, err)
	}
	return matches, nil
}

func (uc *matchUsecase) internal(op, step, id string, err error) error {
	logger.Log.Error("Match workflow failure",
		"operation", op, "step", step, "id", id, "error", err)
	return apperror.Internal(err)
}
