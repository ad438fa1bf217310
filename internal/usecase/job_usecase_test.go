package usecase_test

import (
	"context"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should stamp the creator and persist", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, testReviewerID, j.CreatedBy)
		})

		err := uc.CreateJob(ctx, testReviewerID, &domain.Job{
			Title:          "Backend Engineer",
			Description:    "Build APIs",
			Location:       "Jakarta",
			RequiredSkills: []string{"Go"},
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject jobs with missing fields", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		err := uc.CreateJob(ctx, testReviewerID, &domain.Job{
			Title: "Backend Engineer", Description: "Build APIs", Location: "Jakarta",
		})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListActiveJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should clamp pagination to sane bounds", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)
		jobRepo.On("FetchActive", ctx, 10, 0).Return([]domain.Job{}, int64(0), nil)

		_, _, err := uc.ListActiveJobs(ctx, -3, 0)
		assert.NoError(t, err)
		jobRepo.AssertCalled(t, "FetchActive", ctx, 10, 0)
	})

	t.Run("Should cap oversized page sizes", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)
		jobRepo.On("FetchActive", ctx, 100, 100).Return([]domain.Job{}, int64(0), nil)

		_, _, err := uc.ListActiveJobs(ctx, 2, 500)
		assert.NoError(t, err)
		jobRepo.AssertCalled(t, "FetchActive", ctx, 100, 100)
	})
}
