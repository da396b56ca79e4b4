// Package bearer extracts the opaque holder identity from the
// Authorization header. The token is attached by the UI layer and
// never parsed here; it only has to be stable per session.
package bearer

import (
	"net/http"
	"strings"
)

func Token(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
