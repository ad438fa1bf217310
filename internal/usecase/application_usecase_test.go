package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FindByJobAndUser(ctx context.Context, jobID, userID string) (*domain.Application, error) {
	args := m.Called(ctx, jobID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]domain.Application, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status, reviewedBy string) (*domain.Application, error) {
	args := m.Called(ctx, id, status, reviewedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	return m.Called(ctx, match).Error(0)
}
func (m *MockMatchRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*domain.Match, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMatchRepo) FindAll(ctx context.Context) ([]domain.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}
func (m *MockMatchRepo) FindByJobID(ctx context.Context, jobID string) ([]domain.Match, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}
func (m *MockMatchRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// Fixed ids reused across tests
const (
	testJobID      = "2f9a4c8e-6d1b-4c3a-9f2e-8b7d6a5c4e3f"
	testUserID     = "7b3e9d1a-2c4f-4e6b-8a1d-5f9c7e3b2a6d"
	testAppID      = "c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
	testReviewerID = "9e8d7c6b-5a4f-4e3d-2c1b-0a9f8e7d6c5b"
)

func activeJob() *domain.Job {
	return &domain.Job{ID: testJobID, Title: "Backend Engineer", IsActive: true}
}

func talentUser() *domain.User {
	return &domain.User{
		ID:     testUserID,
		Name:   "Jane Talent",
		Role:   domain.RoleTalent,
		Talent: &domain.TalentProfile{Location: "Jakarta", Skills: []string{"Go"}},
	}
}

func adminUser() *domain.User {
	return &domain.User{ID: testReviewerID, Name: "Ada Admin", Role: domain.RoleAdmin}
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	return appErr.Code
}

func newApplicationMocks() (*MockApplicationRepo, *MockMatchRepo, *MockJobRepo, *MockUserRepo, domain.ApplicationUsecase) {
	appRepo := new(MockApplicationRepo)
	matchRepo := new(MockMatchRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, matchRepo, jobRepo, userRepo)
	return appRepo, matchRepo, jobRepo, userRepo, uc
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create pending application for talent on active job", func(t *testing.T) {
		appRepo, _, jobRepo, userRepo, uc := newApplicationMocks()

		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		appRepo.On("FindByJobAndUser", ctx, testJobID, testUserID).Return(nil, domain.ErrNotFound)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			app.ID = testAppID
		})
		title := "Backend Engineer"
		appRepo.On("GetByID", ctx, testAppID).Return(&domain.Application{
			ID: testAppID, JobID: testJobID, UserID: testUserID,
			Status: domain.ApplicationStatusPending, JobTitle: &title,
		}, nil)

		app, err := uc.Apply(ctx, testJobID, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, testAppID, app.ID)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "Backend Engineer", *app.JobTitle)
	})

	t.Run("Should reject malformed job id before touching storage", func(t *testing.T) {
		appRepo, _, jobRepo, _, uc := newApplicationMocks()

		_, err := uc.Apply(ctx, "not-a-valid-id", testUserID)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 when job does not exist", func(t *testing.T) {
		_, _, jobRepo, _, uc := newApplicationMocks()
		jobRepo.On("GetByID", ctx, testJobID).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, testJobID, testUserID)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should reject application to inactive job", func(t *testing.T) {
		appRepo, _, jobRepo, _, uc := newApplicationMocks()
		inactive := activeJob()
		inactive.IsActive = false
		jobRepo.On("GetByID", ctx, testJobID).Return(inactive, nil)

		_, err := uc.Apply(ctx, testJobID, testUserID)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "no longer active")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should forbid admin users from applying", func(t *testing.T) {
		appRepo, _, jobRepo, userRepo, uc := newApplicationMocks()
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		userRepo.On("GetByID", ctx, testReviewerID).Return(adminUser(), nil)

		_, err := uc.Apply(ctx, testJobID, testReviewerID)
		assert.Error(t, err)
		assert.Equal(t, 403, appCode(t, err))
		assert.Contains(t, err.Error(), "Only talents can apply")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 409 when an application already exists", func(t *testing.T) {
		appRepo, _, jobRepo, userRepo, uc := newApplicationMocks()
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		appRepo.On("FindByJobAndUser", ctx, testJobID, testUserID).Return(&domain.Application{
			ID: testAppID, JobID: testJobID, UserID: testUserID, Status: domain.ApplicationStatusPending,
		}, nil)

		_, err := uc.Apply(ctx, testJobID, testUserID)
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 409 when the unique index catches a concurrent apply", func(t *testing.T) {
		appRepo, _, jobRepo, userRepo, uc := newApplicationMocks()
		jobRepo.On("GetByID", ctx, testJobID).Return(activeJob(), nil)
		userRepo.On("GetByID", ctx, testUserID).Return(talentUser(), nil)
		// Pre-check sees nothing, but the insert races with another apply
		appRepo.On("FindByJobAndUser", ctx, testJobID, testUserID).Return(nil, domain.ErrNotFound)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.Apply(ctx, testJobID, testUserID)
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
		assert.Contains(t, err.Error(), "already applied")
	})
}

func TestReview(t *testing.T) {
	ctx := context.Background()

	reviewed := func(status string) *domain.Application {
		rev := testReviewerID
		return &domain.Application{
			ID: testAppID, JobID: testJobID, UserID: testUserID,
			Status: status, ReviewedBy: &rev,
		}
	}

	t.Run("Should create a match when review sets status to matched", func(t *testing.T) {
		appRepo, matchRepo, _, _, uc := newApplicationMocks()
		appRepo.On("UpdateStatus", ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID).
			Return(reviewed(domain.ApplicationStatusMatched), nil)
		matchRepo.On("FindByUserAndJob", ctx, testUserID, testJobID).Return(nil, domain.ErrNotFound)
		matchRepo.On("Create", ctx, mock.AnythingOfType("*domain.Match")).Return(nil).Run(func(args mock.Arguments) {
			m := args.Get(1).(*domain.Match)
			assert.Equal(t, testJobID, m.JobID)
			assert.Equal(t, testUserID, m.UserID)
			assert.Equal(t, testReviewerID, m.MatchedBy)
			assert.Equal(t, domain.MatchStatusMatched, m.Status)
		})

		app, outcome, err := uc.Review(ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusMatched, app.Status)
		assert.Equal(t, domain.MatchOutcomeCreated, outcome)
	})

	t.Run("Should not duplicate a match on repeated matched review", func(t *testing.T) {
		appRepo, matchRepo, _, _, uc := newApplicationMocks()
		appRepo.On("UpdateStatus", ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID).
			Return(reviewed(domain.ApplicationStatusMatched), nil)
		matchRepo.On("FindByUserAndJob", ctx, testUserID, testJobID).Return(&domain.Match{
			ID: "existing", JobID: testJobID, UserID: testUserID,
		}, nil)

		_, outcome, err := uc.Review(ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchOutcomeAlreadyMatched, outcome)
		matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should not fail the review when match creation fails", func(t *testing.T) {
		appRepo, matchRepo, _, _, uc := newApplicationMocks()
		appRepo.On("UpdateStatus", ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID).
			Return(reviewed(domain.ApplicationStatusMatched), nil)
		matchRepo.On("FindByUserAndJob", ctx, testUserID, testJobID).Return(nil, domain.ErrNotFound)
		matchRepo.On("Create", ctx, mock.AnythingOfType("*domain.Match")).Return(errors.New("connection reset"))

		app, outcome, err := uc.Review(ctx, testAppID, domain.ApplicationStatusMatched, testReviewerID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusMatched, app.Status)
		assert.Equal(t, domain.MatchOutcomeFailed, outcome)
	})

	t.Run("Should not touch matches when rejecting", func(t *testing.T) {
		appRepo, matchRepo, _, _, uc := newApplicationMocks()
		appRepo.On("UpdateStatus", ctx, testAppID, domain.ApplicationStatusRejected, testReviewerID).
			Return(reviewed(domain.ApplicationStatusRejected), nil)

		_, outcome, err := uc.Review(ctx, testAppID, domain.ApplicationStatusRejected, testReviewerID)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchOutcomeNone, outcome)
		matchRepo.AssertNotCalled(t, "FindByUserAndJob", mock.Anything, mock.Anything, mock.Anything)
		matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()

		_, outcome, err := uc.Review(ctx, testAppID, "approved", testReviewerID)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Equal(t, domain.MatchOutcomeNone, outcome)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 for an unknown application", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("UpdateStatus", ctx, testAppID, domain.ApplicationStatusRejected, testReviewerID).
			Return(nil, domain.ErrNotFound)

		_, _, err := uc.Review(ctx, testAppID, domain.ApplicationStatusRejected, testReviewerID)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestCheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report hasApplied false when nothing is found", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("FindByJobAndUser", ctx, testJobID, testUserID).Return(nil, domain.ErrNotFound)

		check, err := uc.CheckStatus(ctx, testJobID, testUserID)
		assert.NoError(t, err)
		assert.False(t, check.HasApplied)
		assert.Nil(t, check.Application)
	})

	t.Run("Should return the application when it exists", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("FindByJobAndUser", ctx, testJobID, testUserID).Return(&domain.Application{
			ID: testAppID, Status: domain.ApplicationStatusPending,
		}, nil)

		check, err := uc.CheckStatus(ctx, testJobID, testUserID)
		assert.NoError(t, err)
		assert.True(t, check.HasApplied)
		assert.Equal(t, testAppID, check.Application.ID)
	})

	t.Run("Should reject malformed job id", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()

		_, err := uc.CheckStatus(ctx, "123", testUserID)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		appRepo.AssertNotCalled(t, "FindByJobAndUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Should compute pages from total and limit", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("FindAll", ctx, "", 10, 10).Return([]domain.Application{
			{ID: testAppID, Status: domain.ApplicationStatusPending},
		}, int64(25), nil)

		page, err := uc.ListAll(ctx, "", 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 3, page.Pages)
	})

	t.Run("Should pass the status filter through", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("FindAll", ctx, domain.ApplicationStatusPending, 10, 0).
			Return([]domain.Application{}, int64(0), nil)

		page, err := uc.ListAll(ctx, domain.ApplicationStatusPending, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 0, page.Pages)
	})

	t.Run("Should reject invalid pagination", func(t *testing.T) {
		_, _, _, _, uc := newApplicationMocks()

		_, err := uc.ListAll(ctx, "", 0, 10)
		assert.Equal(t, 400, appCode(t, err))

		_, err = uc.ListAll(ctx, "", 1, 0)
		assert.Equal(t, 400, appCode(t, err))

		_, err = uc.ListAll(ctx, "", 1, 101)
		assert.Equal(t, 400, appCode(t, err))
	})

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		_, _, _, _, uc := newApplicationMocks()

		_, err := uc.ListAll(ctx, "approved", 1, 10)
		assert.Equal(t, 400, appCode(t, err))
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Should sum only the four known statuses", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("CountByStatus", ctx).Return(map[string]int64{
			domain.ApplicationStatusPending:  3,
			domain.ApplicationStatusMatched:  2,
			domain.ApplicationStatusRejected: 1,
		}, nil)

		stats, err := uc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.Pending)
		assert.Equal(t, int64(2), stats.Matched)
		assert.Equal(t, int64(1), stats.Rejected)
		assert.Equal(t, int64(0), stats.Withdrawn)
		assert.Equal(t, int64(6), stats.Total)
	})

	t.Run("Should report all zeros on an empty table", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationMocks()
		appRepo.On("CountByStatus", ctx).Return(map[string]int64{}, nil)

		stats, err := uc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Total)
	})
}
