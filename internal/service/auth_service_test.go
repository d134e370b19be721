package service

import (
	"context"
	"net/http"
	"testing"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/testutils"
	"beltdash/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *jwt.Issuer {
	return jwt.NewIssuer("test-key", "beltdash", "beltdash-clients")
}

func TestRegisterAssignsPlayerRole(t *testing.T) {
	db := testutils.SetupTestDB(t)
	issuer := testIssuer()
	svc := NewAuthService(db, issuer)

	resp := svc.Register(context.Background(), "fresh_player", "fresh@example.com", "Secret123!")

	require.True(t, resp.Success, resp.ErrorMessage)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "fresh_player", resp.Data.Username)
	assert.Equal(t, models.RolePlayer, resp.Data.Role)

	claims, err := issuer.Parse(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RolePlayer, claims.Role)
}

func TestRegisterRejectsDuplicateEmailCaseInsensitively(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db, testIssuer())
	testutils.CreateTestUser(t, db, testutils.WithEmail("taken@example.com"))

	resp := svc.Register(context.Background(), "another_name", "TAKEN@example.com", "Secret123!")

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is already registered.", resp.ErrorMessage)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db, testIssuer())
	testutils.CreateTestUser(t, db, testutils.WithUsername("taken_name"))

	resp := svc.Register(context.Background(), "Taken_Name", "unused@example.com", "Secret123!")

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username is already taken.", resp.ErrorMessage)
}

func TestLoginErrorsAreInformationEquivalent(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db, testIssuer())
	testutils.CreateTestUser(t, db, testutils.WithEmail("known@example.com"))

	wrongPassword := svc.Login(context.Background(), "known@example.com", "WrongPassword1!")
	unknownEmail := svc.Login(context.Background(), "nosuchuser@example.com", testutils.DefaultPassword)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, wrongPassword.StatusCode, unknownEmail.StatusCode)
	assert.Equal(t, wrongPassword.ErrorMessage, unknownEmail.ErrorMessage,
		"caller must not learn whether the email or the password was wrong")
}

func TestLoginRejectsBannedUserBeforeTokenIssuance(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db, testIssuer())
	testutils.CreateTestUser(t, db,
		testutils.WithEmail("banned@example.com"),
		testutils.WithStatus(models.StatusBanned),
	)

	resp := svc.Login(context.Background(), "banned@example.com", testutils.DefaultPassword)

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Your account has been banned.", resp.ErrorMessage)
	assert.Nil(t, resp.Data, "no token may be issued for a banned account")
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	db := testutils.SetupTestDB(t)
	issuer := testIssuer()
	svc := NewAuthService(db, issuer)
	user := testutils.CreateTestUser(t, db, testutils.WithEmail("valid@example.com"))

	resp := svc.Login(context.Background(), "valid@example.com", testutils.DefaultPassword)

	require.True(t, resp.Success, resp.ErrorMessage)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, resp.Data)
	assert.Equal(t, user.ID, resp.Data.UserID)
	assert.Equal(t, models.RolePlayer, resp.Data.Role)

	claims, err := issuer.Parse(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
}
