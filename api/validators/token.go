package validators

import (
	"net/http"
	"strings"
)

// BearerToken extracts the customer access token from the Authorization
// header. The token is opaque; no parsing beyond the scheme prefix.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
