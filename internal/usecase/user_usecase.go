package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// ListUsers returns users, optionally filtered by role.
func (u *userUsecase) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	if role != "" && role != domain.RoleTalent && role != domain.RoleAdmin {
		return nil, apperror.BadRequest("Role must be either talent or admin")
	}
	users, err := u.userRepo.Fetch(ctx, role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// ListTalents returns the talent directory.
func (u *userUsecase) ListTalents(ctx context.Context) ([]domain.User, error) {
	users, err := u.userRepo.Fetch(ctx, domain.RoleTalent)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}
