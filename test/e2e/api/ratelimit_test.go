package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoginRateLimited drives the credential endpoint past its burst
// allowance from a single IP and expects a 429 before long.
func TestLoginRateLimited(t *testing.T) {
	srv := setupServer(t)

	body := map[string]string{"email": "ghost@example.com", "password": "Whatever1!"}

	limited := false
	for i := 0; i < 10; i++ {
		code := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", body, nil)
		if code == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, code)
	}
	require.True(t, limited, "expected a 429 once the burst allowance was spent")
}
