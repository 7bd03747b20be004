package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	sessionKeyPrefix = "meso-session||"
	tokensSetKey     = "meso-sessions"
)

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// session value is stored as "<userID>|<createdAtUnix>"
func encodeSession(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func decodeSession(val string) (string, time.Time, error) {
	userID, createdAtStr, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, fmt.Errorf("malformed session value: %q", val)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
