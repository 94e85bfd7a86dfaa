package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	token, err := m.Issue("user1", "employer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.Subject)
	assert.Equal(t, "employer", claims.Role)
}

func TestParseExpired(t *testing.T) {
	m := auth.NewManager("test-secret", -time.Minute)

	token, err := m.Issue("user1", "jobseeker")
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-a", time.Hour)
	verifier := auth.NewManager("secret-b", time.Hour)

	token, err := issuer.Issue("user1", "jobseeker")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
