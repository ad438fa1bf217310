package usecase_test

import (
	"context"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMatchMocks() (*MockMatchRepo, *MockJobRepo, *MockUserRepo, domain.MatchUsecase) {
	matchRepo := new(MockMatchRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewMatchUsecase(matchRepo, jobRepo, userRepo)
	return matchRepo, jobRepo, userRepo, uc
}

func TestCreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a match for a talent on an active job", func(t *testing.T) {
		matchRepo, jobRepo, userRepo, uc := newMatchMocks()
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		matchRepo.On("Exists", ctx, testUserID, testJobID).Return(false, nil)
		matchRepo.On("Create", ctx, mock.AnythingOfType("*domain.Match")).Return(nil).Run(func(args mock.Arguments) {
			m := args.Get(1).(*domain.Match)
			assert.Equal(t, domain.MatchStatusMatched, m.Status)
			assert.Equal(t, testReviewerID, m.MatchedBy)
			m.ID = "match-1"
		})
		matchRepo.On("FindByUserAndJob", ctx, testUserID, testJobID).Return(&domain.Match{
			ID: "match-1", JobID: testJobID, UserID: testUserID, Status: domain.MatchStatusMatched,
		}, nil)

		// Empty status defaults to matched
		match, err := uc.CreateMatch(ctx, testUserID, testJobID, testReviewerID, "")
		assert.NoError(t, err)
		assert.Equal(t, "match-1", match.ID)
	})

	t.Run("Should reject matching a non-talent user", func(t *testing.T) {
		matchRepo, _, userRepo, uc := newMatchMocks()
		userRepo.On("GetByID", ctx, testReviewerID).Return(adminUser(), nil)

		_, err := uc.CreateMatch(ctx, testReviewerID, testJobID, testReviewerID, "")
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "Only talent users can be matched")
		matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject matching to an inactive job", func(t *testing.T) {
		matchRepo, jobRepo, userRepo, uc := newMatchMocks()
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		inactive := activeJob()
		inactive.IsActive = false
		jobRepo.On("GetByID", ctx, testJobID).Return(inactive, nil)

		_, err := uc.CreateMatch(ctx, testUserID, testJobID, testReviewerID, "")
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "inactive job")
		matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 409 when the pair is already matched", func(t *testing.T) {
		matchRepo, jobRepo, userRepo, uc := newMatchMocks()
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		matchRepo.On("Exists", ctx, testUserID, testJobID).Return(true, nil)

		_, err := uc.CreateMatch(ctx, testUserID, testJobID, testReviewerID, "")
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
		matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 409 when the unique index catches a concurrent create", func(t *testing.T) {
		matchRepo, jobRepo, userRepo, uc := newMatchMocks()
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		matchRepo.On("Exists", ctx, testUserID, testJobID).Return(false, nil)
		matchRepo.On("Create", ctx, mock.AnythingOfType("*domain.Match")).Return(domain.ErrDuplicate)

		_, err := uc.CreateMatch(ctx, testUserID, testJobID, testReviewerID, "")
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
	})

	t.Run("Should reject an unknown match status", func(t *testing.T) {
		_, _, userRepo, uc := newMatchMocks()

		_, err := uc.CreateMatch(ctx, testUserID, testJobID, testReviewerID, "pending")
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed ids", func(t *testing.T) {
		_, _, userRepo, uc := newMatchMocks()

		_, err := uc.CreateMatch(ctx, "abc", testJobID, testReviewerID, "")
		assert.Equal(t, 400, appCode(t, err))

		_, err = uc.CreateMatch(ctx, testUserID, "abc", testReviewerID, "")
		assert.Equal(t, 400, appCode(t, err))

		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require the job to exist when listing by job", func(t *testing.T) {
		matchRepo, jobRepo, _, uc := newMatchMocks()
		jobRepo.On("GetByID", ctx, testJobID).Return(nil, domain.ErrNotFound)

		_, err := uc.ListByJob(ctx, testJobID)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
		matchRepo.AssertNotCalled(t, "FindByJobID", mock.Anything, mock.Anything)
	})

	t.Run("Should skip the existence check for a talent's own matches", func(t *testing.T) {
		matchRepo, _, userRepo, uc := newMatchMocks()
		matchRepo.On("FindByUserID", ctx, testUserID).Return([]domain.Match{
			{ID: "match-1", UserID: testUserID, JobID: testJobID},
		}, nil)

		matches, err := uc.ListForTalent(ctx, testUserID)
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
