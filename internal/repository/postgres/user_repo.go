package postgres

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user. Talent-only columns stay NULL for admins.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, location, skills, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	user.CreatedAt = time.Now()

	var location *string
	var skills interface{}
	if user.Talent != nil {
		if user.Talent.Location != "" {
			location = &user.Talent.Location
		}
		skills = pq.Array(user.Talent.Skills)
	}

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		location,
		skills,
		user.CreatedAt,
	).Scan(&user.ID)
	return translateError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, location, skills, created_at
		FROM users
		WHERE id = $1`

	return r.scanUser(ctx, query, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, location, skills, created_at
		FROM users
		WHERE email = $1`

	return r.scanUser(ctx, query, email)
}

func (r *userRepo) scanUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	var location *string
	var skills []string

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&location, pq.Array(&skills), &user.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	if user.Role == domain.RoleTalent {
		profile := &domain.TalentProfile{Skills: skills}
		if location != nil {
			profile.Location = *location
		}
		user.Talent = profile
	}

	return &user, nil
}

// Fetch lists users, optionally filtered by role, newest first.
func (r *userRepo) Fetch(ctx context.Context, role string) ([]domain.User, error) {
	query := `
		SELECT id, name, email, role, location, skills, created_at
		FROM users
		WHERE ($1 = '' OR role = $1)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var location *string
		var skills []string
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role,
			&location, pq.Array(&skills), &user.CreatedAt,
		); err != nil {
			return nil, translateError(err)
		}
		if user.Role == domain.RoleTalent {
			profile := &domain.TalentProfile{Skills: skills}
			if location != nil {
				profile.Location = *location
			}
			user.Talent = profile
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
