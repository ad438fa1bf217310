package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthMocks() (*MockUserRepo, *auth.Manager, domain.AuthUsecase) {
	userRepo := new(MockUserRepo)
	tokens := auth.NewManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(userRepo, tokens)
	return userRepo, tokens, uc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should register a talent with normalized email and hashed password", func(t *testing.T) {
		userRepo, tokens, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "jane@example.com", u.Email)
			assert.Equal(t, domain.RoleTalent, u.Role)
			assert.NotNil(t, u.Talent)
			assert.Equal(t, []string{"Go", "SQL"}, u.Talent.Skills)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
			u.ID = testUserID
		})

		user, token, err := uc.Register(ctx, domain.RegisterInput{
			Name:     "Jane Talent",
			Email:    "  Jane@Example.COM ",
			Password: "hunter22",
			Location: "Jakarta",
			Skills:   []string{"Go", "SQL"},
		})
		assert.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)

		claims, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, testUserID, claims.Subject)
		assert.Equal(t, domain.RoleTalent, claims.Role)
	})

	t.Run("Should not attach a talent profile to an admin", func(t *testing.T) {
		userRepo, _, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Nil(t, u.Talent)
			u.ID = testReviewerID
		})

		user, _, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Ada Admin", Email: "ada@example.com", Password: "hunter22", Role: domain.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("Should return 409 for a taken email", func(t *testing.T) {
		userRepo, _, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(talentUser(), nil)

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Jane Talent", Email: "jane@example.com", Password: "hunter22",
		})
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 409 when the unique column catches a concurrent register", func(t *testing.T) {
		userRepo, _, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Jane Talent", Email: "jane@example.com", Password: "hunter22",
		})
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		userRepo, _, uc := newAuthMocks()

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			Name: "Jane", Email: "jane@example.com", Password: "hunter22", Role: "recruiter",
		})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed := func(password string) *domain.User {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u := talentUser()
		u.PasswordHash = string(hash)
		return u
	}

	t.Run("Should authenticate and issue a token", func(t *testing.T) {
		userRepo, tokens, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(hashed("hunter22"), nil)

		user, token, err := uc.Login(ctx, "Jane@Example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)

		claims, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, testUserID, claims.Subject)
	})

	t.Run("Should return the same error for unknown email and wrong password", func(t *testing.T) {
		userRepo, _, uc := newAuthMocks()
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(hashed("hunter22"), nil)

		_, _, errUnknown := uc.Login(ctx, "nobody@example.com", "hunter22")
		_, _, errWrongPw := uc.Login(ctx, "jane@example.com", "wrong")

		assert.Equal(t, 401, appCode(t, errUnknown))
		assert.Equal(t, 401, appCode(t, errWrongPw))
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}
