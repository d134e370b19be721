package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"beltdash/backend/internal/service"
	"beltdash/backend/internal/testutils"
	jwtpkg "beltdash/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	tokens := jwtpkg.NewIssuer("test-signing-key", "beltdash", "beltdash-clients")
	return NewRouter(db, tokens)
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) service.Response[T] {
	t.Helper()
	var resp service.Response[T]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func registerUser(t *testing.T, router *gin.Engine, username string) service.AuthResponse {
	t.Helper()
	recorder := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":        username,
		"email":           username + "@example.com",
		"password":        "Password123!",
		"confirmPassword": "Password123!",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	resp := decode[service.AuthResponse](t, recorder)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data
}

func TestRegisterSubmitScoreAndListIt(t *testing.T) {
	router := newTestRouter(t)
	account := registerUser(t, router, "speedrunner")

	created := doJSON(router, http.MethodPost, "/api/v1/scores", account.Token, gin.H{"points": 150})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	score := decode[service.ScoreResponse](t, created)
	assert.Equal(t, 150, score.Data.Points)
	assert.Equal(t, "speedrunner", score.Data.Username)

	listed := doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/scores", account.UserID), account.Token, nil)
	require.Equal(t, http.StatusOK, listed.Code, listed.Body.String())
	scores := decode[[]service.ScoreResponse](t, listed)
	require.Len(t, scores.Data, 1)
	assert.Equal(t, 150, scores.Data[0].Points)
}

func TestRegisterValidatesInput(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"short username", gin.H{"username": "ab", "email": "a@example.com", "password": "Password123!", "confirmPassword": "Password123!"}},
		{"bad email", gin.H{"username": "player", "email": "nope", "password": "Password123!", "confirmPassword": "Password123!"}},
		{"short password", gin.H{"username": "player", "email": "a@example.com", "password": "short", "confirmPassword": "short"}},
		{"password mismatch", gin.H{"username": "player", "email": "a@example.com", "password": "Password123!", "confirmPassword": "Different123!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestLoginRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "returning")

	ok := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "returning@example.com",
		"password": "Password123!",
	})
	require.Equal(t, http.StatusOK, ok.Code, ok.Body.String())
	resp := decode[service.AuthResponse](t, ok)
	assert.Equal(t, "returning", resp.Data.Username)
	assert.NotEmpty(t, resp.Data.Token)

	bad := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "returning@example.com",
		"password": "WrongPassword!",
	})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	assert.Contains(t, bad.Body.String(), "Invalid email or password.")
}

func TestScoreRoutesAuthorization(t *testing.T) {
	router := newTestRouter(t)

	anonymous := doJSON(router, http.MethodPost, "/api/v1/scores", "", gin.H{"points": 10})
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	public := doJSON(router, http.MethodGet, "/api/v1/scores?pageNumber=1&pageSize=10", "", nil)
	assert.Equal(t, http.StatusOK, public.Code)

	top := doJSON(router, http.MethodGet, "/api/v1/scores/top?count=5", "", nil)
	assert.Equal(t, http.StatusOK, top.Code)
}

func TestUserRoutesAuthorization(t *testing.T) {
	router := newTestRouter(t)
	player := registerUser(t, router, "regular")

	// The seeded administrator can reach admin endpoints.
	adminLogin := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "Admin123!",
	})
	require.Equal(t, http.StatusOK, adminLogin.Code, adminLogin.Body.String())
	admin := decode[service.AuthResponse](t, adminLogin).Data

	denied := doJSON(router, http.MethodGet, "/api/v1/users", player.Token, nil)
	assert.Equal(t, http.StatusForbidden, denied.Code)

	allowed := doJSON(router, http.MethodGet, "/api/v1/users", admin.Token, nil)
	assert.Equal(t, http.StatusOK, allowed.Code)

	roles := doJSON(router, http.MethodGet, "/api/v1/roles", admin.Token, nil)
	assert.Equal(t, http.StatusOK, roles.Code)
	rolesDenied := doJSON(router, http.MethodGet, "/api/v1/roles", player.Token, nil)
	assert.Equal(t, http.StatusForbidden, rolesDenied.Code)

	otherScores := doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/scores", admin.UserID), player.Token, nil)
	assert.Equal(t, http.StatusForbidden, otherScores.Code)
}

func TestAdminCanBanAndDeleteUser(t *testing.T) {
	router := newTestRouter(t)
	target := registerUser(t, router, "troublemaker")

	adminLogin := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "Admin123!",
	})
	require.Equal(t, http.StatusOK, adminLogin.Code)
	admin := decode[service.AuthResponse](t, adminLogin).Data

	banned := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d/status", target.UserID), admin.Token, gin.H{"status": "Banned"})
	require.Equal(t, http.StatusOK, banned.Code, banned.Body.String())

	// A banned account can no longer log in.
	login := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "troublemaker@example.com",
		"password": "Password123!",
	})
	assert.Equal(t, http.StatusForbidden, login.Code)
	assert.Contains(t, login.Body.String(), "Your account has been banned.")

	deleted := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", target.UserID), admin.Token, nil)
	assert.Equal(t, http.StatusOK, deleted.Code)

	gone := doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", target.UserID), admin.Token, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestPingAndMetricsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	ping := doJSON(router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, ping.Code)
	assert.Contains(t, ping.Body.String(), "pong")

	metrics := doJSON(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, metrics.Code)
}
