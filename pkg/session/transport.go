package session

import (
	"net/http"
	"strings"
)

const bearerPrefix = "bearer "

// TokenFromRequest extracts a bearer credential from the Authorization header.
// The token is only captured for later use; it is never validated.
func TokenFromRequest(r *http.Request) (string, bool) {
	value := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(value) <= len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(value[len(bearerPrefix):])
	return token, token != ""
}
