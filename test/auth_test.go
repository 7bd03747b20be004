//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/misc"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) TestSignupLoginLogout() {
	ctx := context.Background()

	creds := auth.Credentials{
		Email:    strings.ToLower(gofakeit.Email()),
		Password: "s3cret-pass",
	}

	var user auth.User
	s.doJSON(ctx, http.MethodPost, "/a/signup", "", creds, &user, http.StatusCreated)
	s.NotEmpty(user.ID)
	s.Equal(creds.Email, user.Email)

	// same email again
	status, _ := s.do(ctx, http.MethodPost, "/a/signup", "", creds)
	s.Equal(http.StatusConflict, status)

	var count int
	s.Require().NoError(
		s.DB.QueryRow("SELECT COUNT(*) FROM app_user WHERE email = $1", creds.Email).Scan(&count),
	)
	s.Equal(1, count)

	// wrong password
	status, _ = s.do(ctx, http.MethodPost, "/a/login", "", auth.Credentials{
		Email:    creds.Email,
		Password: "not-the-password",
	})
	s.Equal(http.StatusBadRequest, status)

	var loginResp misc.LoginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", creds, &loginResp, http.StatusOK)
	s.Require().NotEmpty(loginResp.Token)

	// token opens protected routes
	status, _ = s.do(ctx, http.MethodGet, "/mesocycles", loginResp.Token, nil)
	s.Equal(http.StatusOK, status)

	status, body := s.do(ctx, http.MethodGet, "/a/logout", loginResp.Token, nil)
	s.Equal(http.StatusOK, status)
	s.Equal("logged-out", string(body))

	// token no longer valid
	status, _ = s.do(ctx, http.MethodGet, "/mesocycles", loginResp.Token, nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/a/logout", loginResp.Token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestProtectedRoutesWithoutToken() {
	ctx := context.Background()

	for _, path := range []string{"/mesocycles", "/mesocycles/current", "/exercises", "/preferences/logo"} {
		status, _ := s.do(ctx, http.MethodGet, path, "", nil)
		s.Equal(http.StatusUnauthorized, status, path)
	}

	status, _ := s.do(ctx, http.MethodGet, "/mesocycles", "invalid-token", nil)
	s.Equal(http.StatusUnauthorized, status)

	// open routes
	status, body := s.do(ctx, http.MethodGet, "/version", "", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("test-version-info", string(body))

	status, _ = s.do(ctx, http.MethodGet, "/rir?weeks=5&week=2", "", nil)
	s.Equal(http.StatusOK, status)
}
