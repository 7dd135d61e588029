package main

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// authorized checks the request's bearer token against the configured
// bcrypt hashes. An empty hash list accepts every request.
func authorized(r *http.Request, tokenHashes []string) bool {
	if len(tokenHashes) == 0 {
		return true
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return false
	}

	for _, hash := range tokenHashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil {
			return true
		}
	}
	return false
}

// requireAuth wraps a handler with the bearer token check.
func requireAuth(tokenHashes []string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, tokenHashes) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
