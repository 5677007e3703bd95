package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kyamashita/study-tracker-api/internal/dto"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	mustEqualStatus(t, w, http.StatusOK)

	response := decodeJSON[dto.AuthResponse](t, w)
	require.NotEmpty(t, response.Token)
	require.Equal(t, "alice@example.com", response.User.Email)
	require.NotEmpty(t, response.User.ID)

	// The returned token must authenticate follow-up requests.
	me := env.doRequest(t, http.MethodGet, "/api/auth/me", response.Token, nil)
	mustEqualStatus(t, me, http.StatusOK)

	current := decodeJSON[dto.UserDTO](t, me)
	require.Equal(t, response.User.ID, current.ID)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "alice@example.com",
	})
	mustEqualStatus(t, w, http.StatusBadRequest)

	w = env.doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"password": "supersecret",
	})
	mustEqualStatus(t, w, http.StatusBadRequest)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice@example.com")

	w := env.doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	mustEqualStatus(t, w, http.StatusConflict)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.registerUser(t, "alice@example.com")

	w := env.doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	mustEqualStatus(t, w, http.StatusOK)

	response := decodeJSON[dto.AuthResponse](t, w)
	require.NotEmpty(t, response.Token)
	require.Equal(t, user.ID, response.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice@example.com")

	// Wrong password and unknown email produce identical responses.
	wrong := env.doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	mustEqualStatus(t, wrong, http.StatusUnauthorized)

	unknown := env.doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	mustEqualStatus(t, unknown, http.StatusUnauthorized)
	require.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestAuthHandler_Me_RequiresToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodGet, "/api/auth/me", "", nil)
	mustEqualStatus(t, w, http.StatusUnauthorized)

	w = env.doRequest(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	mustEqualStatus(t, w, http.StatusUnauthorized)
}
