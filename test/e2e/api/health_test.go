package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t)

	var live struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	code := doJSON(t, http.MethodGet, srv.URL+"/livez", "", nil, &live)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	var ready struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
		} `json:"checks"`
	}
	code = doJSON(t, http.MethodGet, srv.URL+"/readyz", "", nil, &ready)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}
