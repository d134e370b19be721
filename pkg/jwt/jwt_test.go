package jwt

import (
	"testing"
	"time"

	"beltdash/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: 42},
		Username:  "player_one",
		Email:     "player@example.com",
	}
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-key", "beltdash", "beltdash-clients")

	token, err := issuer.Issue(testUser(), "player")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, "player_one", claims.Username)
	assert.Equal(t, "player", claims.Role)
	assert.NotEmpty(t, claims.ID, "token must carry a unique token ID")

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenExpiresOneHourAfterIssuance(t *testing.T) {
	issuer := NewIssuer("test-key", "beltdash", "beltdash-clients")

	token, err := issuer.Issue(testUser(), "player")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestParseRejectsForgedAndMismatchedTokens(t *testing.T) {
	issuer := NewIssuer("test-key", "beltdash", "beltdash-clients")
	token, err := issuer.Issue(testUser(), "player")
	require.NoError(t, err)

	tests := []struct {
		name    string
		parser  *Issuer
		token   string
	}{
		{"wrong signing key", NewIssuer("other-key", "beltdash", "beltdash-clients"), token},
		{"wrong issuer", NewIssuer("test-key", "someone-else", "beltdash-clients"), token},
		{"wrong audience", NewIssuer("test-key", "beltdash", "other-clients"), token},
		{"garbage token", issuer, "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestUserIDRejectsNonNumericSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-number"

	_, err := claims.UserID()
	assert.Error(t, err)
}
