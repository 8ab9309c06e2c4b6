package auth

import "strings"

const bearerPrefix = "Bearer "

// ExtractBearer returns the token of an "Authorization: Bearer <token>" header value.
// It only checks the header format; the token itself is not verified.
func ExtractBearer(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
