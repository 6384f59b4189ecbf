//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/pkg/cookie"
	"sneakdrop/tests/common/httptest"
	"sneakdrop/tests/e2e"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) registerAccount(email, username, password string) *response.UserResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "username": username, "password": password}, "")

	var resp response.UserResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return &resp
}

func (s *AuthSuite) TestRegister() {
	s.Run("creates a member account", func() {
		resp := s.registerAccount("new@example.com", "newcomer", "longenough")

		s.Equal("new@example.com", resp.Email)
		s.Equal("newcomer", resp.Username)
		s.Equal("member", resp.Role)
		s.True(resp.IsActive)
	})

	s.Run("duplicate email is rejected", func() {
		s.registerAccount("taken@example.com", "first", "longenough")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "taken@example.com", "username": "second", "password": "longenough"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "déjà utilisé")
	})

	s.Run("short password is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "short@example.com", "username": "shorty", "password": "tiny"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalide")
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials return a token and set the cookie", func() {
		s.registerAccount("login@example.com", "logger", "longenough")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "login@example.com", "password": "longenough"}, "")

		var resp response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotEmpty(resp.AccessToken)
		s.Equal("login@example.com", resp.User.Email)

		tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie, "access token cookie missing")
		s.Equal(resp.AccessToken, tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("wrong password returns 401", func() {
		s.registerAccount("login@example.com", "logger", "longenough")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "login@example.com", "password": "wrongpass1"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "mot de passe invalide")
	})

	s.Run("unknown email returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "ghost@example.com", "password": "longenough"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "mot de passe invalide")
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("cookie from login authenticates the session", func() {
		s.registerAccount("session@example.com", "sessioned", "longenough")

		login := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "session@example.com", "password": "longenough"}, "")
		tokenCookie := httptest.ExtractCookie(login, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/auth/me",
			nil, []*http.Cookie{tokenCookie}, "")

		var resp response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("session@example.com", resp.Email)
	})

	s.Run("no credentials returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentification requise")
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("clears the access token cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
		tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie, "expected an expired cookie to be set")
		s.Empty(tokenCookie.Value)
		s.Negative(tokenCookie.MaxAge)
	})
}
