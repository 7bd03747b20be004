package auth

import "context"

// LoginTestChecker maps session tokens to user IDs, used in handler and server tests.
type LoginTestChecker struct {
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (string, bool, error) {
	userID, ok := c.LoggedSessions[token]
	return userID, ok, nil
}
