package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type taskBody struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type taskListBody struct {
	Tasks []taskBody `json:"tasks"`
}

func TestTaskCRUD(t *testing.T) {
	srv := setupServer(t)
	token := registerAndLogin(t, srv.URL, "alice@example.com", "Secret123!")

	// Create
	var created taskBody
	code := doJSON(t, http.MethodPost, srv.URL+"/tasks", token,
		map[string]string{"title": "buy milk", "description": "2 liters"}, &created)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, created.ID)
	require.False(t, created.Completed)

	// Read back
	var got taskBody
	code = doJSON(t, http.MethodGet, srv.URL+"/tasks/"+created.ID, token, nil, &got)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "buy milk", got.Title)

	// Partial update: complete it without touching title
	var updated taskBody
	code = doJSON(t, http.MethodPut, srv.URL+"/tasks/"+created.ID, token,
		map[string]bool{"completed": true}, &updated)
	require.Equal(t, http.StatusOK, code)
	require.True(t, updated.Completed)
	require.Equal(t, "buy milk", updated.Title)

	// List contains exactly this task
	var list taskListBody
	code = doJSON(t, http.MethodGet, srv.URL+"/tasks", token, nil, &list)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Tasks, 1)

	// Delete, then it is gone
	code = doJSON(t, http.MethodDelete, srv.URL+"/tasks/"+created.ID, token, nil, nil)
	require.Equal(t, http.StatusNoContent, code)

	code = doJSON(t, http.MethodGet, srv.URL+"/tasks/"+created.ID, token, nil, nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestTaskTitleRequired(t *testing.T) {
	srv := setupServer(t)
	token := registerAndLogin(t, srv.URL, "alice@example.com", "Secret123!")

	code := doJSON(t, http.MethodPost, srv.URL+"/tasks", token,
		map[string]string{"title": "   "}, nil)
	require.Equal(t, http.StatusBadRequest, code)
}

// TestTasksAreInvisibleAcrossUsers pins down the no-leak policy: another
// user's task answers 404 on read, update and delete, exactly like a task
// that does not exist.
func TestTasksAreInvisibleAcrossUsers(t *testing.T) {
	srv := setupServer(t)
	aliceToken := registerAndLogin(t, srv.URL, "alice@example.com", "Secret123!")
	bobToken := registerAndLogin(t, srv.URL, "bob@example.com", "Secret456!")

	var aliceTask taskBody
	code := doJSON(t, http.MethodPost, srv.URL+"/tasks", aliceToken,
		map[string]string{"title": "alice's secret"}, &aliceTask)
	require.Equal(t, http.StatusCreated, code)

	var errBody struct {
		Error string `json:"error"`
	}
	code = doJSON(t, http.MethodGet, srv.URL+"/tasks/"+aliceTask.ID, bobToken, nil, &errBody)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "not_found", errBody.Error)

	code = doJSON(t, http.MethodPut, srv.URL+"/tasks/"+aliceTask.ID, bobToken,
		map[string]bool{"completed": true}, nil)
	require.Equal(t, http.StatusNotFound, code)

	code = doJSON(t, http.MethodDelete, srv.URL+"/tasks/"+aliceTask.ID, bobToken, nil, nil)
	require.Equal(t, http.StatusNotFound, code)

	// Bob's list stays empty; Alice still owns her task untouched.
	var list taskListBody
	code = doJSON(t, http.MethodGet, srv.URL+"/tasks", bobToken, nil, &list)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, list.Tasks)

	var got taskBody
	code = doJSON(t, http.MethodGet, srv.URL+"/tasks/"+aliceTask.ID, aliceToken, nil, &got)
	require.Equal(t, http.StatusOK, code)
	require.False(t, got.Completed)
}

func TestTasksRequireAuthentication(t *testing.T) {
	srv := setupServer(t)

	code := doJSON(t, http.MethodGet, srv.URL+"/tasks", "", nil, nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code = doJSON(t, http.MethodPost, srv.URL+"/tasks", "",
		map[string]string{"title": "nope"}, nil)
	require.Equal(t, http.StatusUnauthorized, code)
}
