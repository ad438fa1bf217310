package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("Should round-trip claims", func(t *testing.T) {
		token, err := m.Issue("user-1", "talent", "jane@example.com", "Jane")
		assert.NoError(t, err)

		claims, err := m.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "talent", claims.Role)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "Jane", claims.Name)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.Issue("user-1", "talent", "", "")
		assert.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestVerifyExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m := NewManager("test-secret", time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.Issue("user-1", "talent", "", "")
	assert.NoError(t, err)

	// Still valid just before expiry
	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.Verify(token)
	assert.NoError(t, err)

	// Expired afterwards
	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
