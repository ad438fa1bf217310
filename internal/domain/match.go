package domain

import (
	"context"
	"time"
)

// Match status constants
const (
	MatchStatusMatched = "matched"
	MatchStatusViewed  = "viewed"
	MatchStatusApplied = "applied"
)

// ValidMatchStatus reports whether s is one of the known match states.
func ValidMatchStatus(s string) bool {
	switch s {
	case MatchStatusMatched, MatchStatusViewed, MatchStatusApplied:
		return true
	}
	return false
}

// Match links a talent to a job, created either directly by an admin or as
// the side effect of reviewing an application to matched.
type Match struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	UserID    string    `json:"user_id"`
	MatchedBy string    `json:"matched_by"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	JobLocation *string `json:"job_location,omitempty"`
	TalentName  *string `json:"talent_name,omitempty"`
	TalentEmail *string `json:"talent_email,omitempty"`
	MatcherName *string `json:"matcher_name,omitempty"`
}

// MatchRepository defines data access methods for matches. Create must
// reject a second match for the same (job, user) pair with ErrDuplicate.
type MatchRepository interface {
	Create(ctx context.Context, match *Match) error
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*Match, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	FindAll(ctx context.Context) ([]Match, error)
	FindByJobID(ctx context.Context, jobID string) ([]Match, error)
	FindByUserID(ctx context.Context, userID string) ([]Match, error)
}

// MatchUsecase defines the direct match workflow. It enforces the same role
// and uniqueness invariants as the application-triggered path.
type MatchUsecase interface {
	CreateMatch(ctx context.Context, userID, jobID, matchedBy, status string) (*Match, error)
	ListAll(ctx context.Context) ([]Match, error)
	ListByJob(ctx context.Context, jobID string) ([]Match, error)
	ListByUser(ctx context.Context, userID string) ([]Match, error)
	ListForTalent(ctx context.Context, userID string) ([]Match, error)
}
