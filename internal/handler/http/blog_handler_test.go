// File: internal/handler/http/blog_handler_test.go
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, env *testEnv, username, email string) []*http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{
		"username": %q,
		"name": "Some Writer",
		"email": %q,
		"password": "Password1",
		"confirmPassword": "Password1"
	}`, username, email)
	w := env.do(t, http.MethodPost, "/register", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return w.Result().Cookies()
}

func createBlog(t *testing.T, env *testEnv, cookies []*http.Cookie, title string) string {
	t.Helper()
	body := fmt.Sprintf(`{"title": %q, "content": "some content"}`, title)
	w := env.do(t, http.MethodPost, "/blog", body, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestBlogRoutes_RequireAuthentication(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct{ method, path string }{
		{http.MethodPost, "/blog"},
		{http.MethodGet, "/blog/all"},
		{http.MethodGet, "/blog/00000000-0000-0000-0000-000000000000"},
		{http.MethodPut, "/blog"},
		{http.MethodDelete, "/blog/00000000-0000-0000-0000-000000000000"},
		{http.MethodPost, "/comment"},
		{http.MethodGet, "/comment"},
	}
	for _, tc := range cases {
		w := env.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestBlog_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")

	id := createBlog(t, env, cookies, "My first post")

	w := env.do(t, http.MethodGet, "/blog/"+id, "", cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "My first post")
}

func TestBlog_GetUnknownIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")

	w := env.do(t, http.MethodGet, "/blog/2d8e6a64-14a5-4be7-9c2b-000000000001", "", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlog_GetMalformedIDBadRequest(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")

	w := env.do(t, http.MethodGet, "/blog/not-a-uuid", "", cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlog_ListReturnsAll(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")

	createBlog(t, env, cookies, "Post one")
	createBlog(t, env, cookies, "Post two")

	w := env.do(t, http.MethodGet, "/blog/all", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var blogs []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blogs))
	assert.Len(t, blogs, 2)
}

func TestBlog_UpdateByAuthor(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")
	id := createBlog(t, env, cookies, "Original title")

	body := fmt.Sprintf(`{"id": %q, "title": "Edited title"}`, id)
	w := env.do(t, http.MethodPut, "/blog", body, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Edited title")
	assert.Contains(t, w.Body.String(), "some content")
}

func TestBlog_UpdateByNonAuthorForbidden(t *testing.T) {
	env := newTestEnv(t)
	author := registerUser(t, env, "blogwriter", "writer@example.com")
	stranger := registerUser(t, env, "otherwriter", "other@example.com")
	id := createBlog(t, env, author, "Protected post")

	body := fmt.Sprintf(`{"id": %q, "title": "Hijacked"}`, id)
	w := env.do(t, http.MethodPut, "/blog", body, stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBlog_DeleteByAuthor(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")
	id := createBlog(t, env, cookies, "Short lived")

	w := env.do(t, http.MethodDelete, "/blog/"+id, "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	gone := env.do(t, http.MethodGet, "/blog/"+id, "", cookies)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestBlog_DeleteByNonAuthorForbidden(t *testing.T) {
	env := newTestEnv(t)
	author := registerUser(t, env, "blogwriter", "writer@example.com")
	stranger := registerUser(t, env, "otherwriter", "other@example.com")
	id := createBlog(t, env, author, "Protected post")

	w := env.do(t, http.MethodDelete, "/blog/"+id, "", stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBlog_CreateEmptyTitleRejected(t *testing.T) {
	env := newTestEnv(t)
	cookies := registerUser(t, env, "blogwriter", "writer@example.com")

	w := env.do(t, http.MethodPost, "/blog", `{"title": "", "content": "body"}`, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
