//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/mesocycles/internal/auth"
	"github.com/2beens/mesocycles/internal/middleware"
	"github.com/2beens/mesocycles/internal/misc"

	"github.com/brianvoe/gofakeit/v6"
)

type testUser struct {
	ID       string
	Email    string
	Password string
	Token    string
}

// do sends a request to the test server, with an optional JSON body and session token.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("close response body: %s", err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, respBytes
}

// doJSON is do, followed by unmarshalling a successful response into out.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body, out any, expectedStatus int) {
	status, respBytes := s.do(ctx, method, path, token, body)
	s.Require().Equal(expectedStatus, status, fmt.Sprintf("%s %s: %s", method, path, respBytes))
	if out != nil {
		s.Require().NoError(json.Unmarshal(respBytes, out))
	}
}

// newUser signs up a new random user and logs them in.
func (s *IntegrationTestSuite) newUser(ctx context.Context) testUser {
	creds := auth.Credentials{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	var user auth.User
	s.doJSON(ctx, http.MethodPost, "/a/signup", "", creds, &user, http.StatusCreated)

	var loginResp misc.LoginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", creds, &loginResp, http.StatusOK)
	s.Require().NotEmpty(loginResp.Token)

	return testUser{
		ID:       user.ID,
		Email:    creds.Email,
		Password: creds.Password,
		Token:    loginResp.Token,
	}
}
