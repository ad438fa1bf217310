package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account and returns it with a signed token.
// Email uniqueness is pre-checked for the error message; the unique column
// constraint is the actual guarantee.
func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	role := input.Role
	if role == "" {
		role = domain.RoleTalent
	}
	if role != domain.RoleTalent && role != domain.RoleAdmin {
		return nil, "", apperror.BadRequest("Role must be either talent or admin")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", uc.internal("register", "check email", err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", uc.internal("register", "hash password", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if role == domain.RoleTalent {
		user.Talent = &domain.TalentProfile{
			Location: input.Location,
			Skills:   input.Skills,
		}
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("User with this email already exists")
		}
		return nil, "", uc.internal("register", "create user", err)
	}

	token, err := uc.tokens.Issue(user.ID, user.Role, user.Email, user.Name)
	if err != nil {
		return nil, "", uc.internal("register", "issue token", err)
	}

	return user, token, nil
}

// Login authenticates by email and password. Both unknown email and wrong
// password map to the same message so credentials cannot be enumerated.
func (uc *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", uc.internal("login", "fetch user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := uc.tokens.Issue(user.ID, user.Role, user.Email, user.Name)
	if err != nil {
		return nil, "", uc.internal("login", "issue token", err)
	}

	return user, token, nil
}

// GetCurrentUser returns the authenticated user's profile.
func (uc *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, uc.internal("getCurrentUser", "fetch user", err)
	}
	return user, nil
}

func (uc *authUsecase) internal(op, step string, err error) error {
	logger.Log.Error("Auth failure", "operation", op, "step", step, "error", err)
	return apperror.Internal(err)
}
