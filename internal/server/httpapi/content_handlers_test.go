package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogBody struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	CreatedAt   string   `json:"createdAt"`
}

func decodeData(t *testing.T, res response, v any) {
	t.Helper()
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Raw, &body))
	require.NoError(t, json.Unmarshal(body.Data, v))
}

func TestBlogs_CRUD(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t)

	in := map[string]any{"title": "First", "description": "d", "content": "c", "tags": []string{"go"}, "published": true}

	res := env.do(t, http.MethodPost, "/api/blogs", "", in)
	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Access token required", res.Env.Message)

	res = env.do(t, http.MethodPost, "/api/blogs", tok, in)
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "Blog created successfully", res.Env.Message)
	var created blogBody
	decodeData(t, res, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"go"}, created.Tags)

	res = env.do(t, http.MethodGet, "/api/blogs/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var got blogBody
	decodeData(t, res, &got)
	assert.Equal(t, created, got)

	in["title"] = "Renamed"
	res = env.do(t, http.MethodPut, "/api/blogs/"+created.ID, tok, in)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Blog updated successfully", res.Env.Message)
	var updated blogBody
	decodeData(t, res, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	res = env.do(t, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var list []blogBody
	decodeData(t, res, &list)
	require.Len(t, list, 1)

	res = env.do(t, http.MethodDelete, "/api/blogs/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Blog deleted successfully", res.Env.Message)

	res = env.do(t, http.MethodGet, "/api/blogs/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Blog not found", res.Env.Message)
}

func TestBlogs_PublishedFilter(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t)

	for _, pub := range []bool{true, false} {
		res := env.do(t, http.MethodPost, "/api/blogs", tok, map[string]any{
			"title": "t", "description": "d", "content": "c", "published": pub,
		})
		require.Equal(t, http.StatusCreated, res.Code)
	}

	res := env.do(t, http.MethodGet, "/api/blogs?published=true", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var list []blogBody
	decodeData(t, res, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Published)

	res = env.do(t, http.MethodGet, "/api/blogs?published=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "published must be true or false", res.Env.Message)
}

func TestContent_ValidationAndDecoding(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t)

	res := env.do(t, http.MethodPost, "/api/projects", tok, map[string]any{"description": "d"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Title is required", res.Env.Message)

	res = env.do(t, http.MethodPost, "/api/education", tok, map[string]any{"degree": "BSc", "institution": "U", "year": "2020", "gpa": 4})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Invalid request body", res.Env.Message)

	res = env.do(t, http.MethodPost, "/api/experience", tok, map[string]any{"position": "Dev", "company": "A", "year": "2020", "order": "first"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Invalid value for order", res.Env.Message)
}

func TestContent_MalformedAndMissingIDs(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t)

	res := env.do(t, http.MethodGet, "/api/extracurricular/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Extracurricular activity not found", res.Env.Message)

	missing := "3b241101-e2bb-4255-8caf-4136c566a962"
	res = env.do(t, http.MethodPut, "/api/education/"+missing, tok, map[string]any{"degree": "BSc", "institution": "U", "year": "2020"})
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Education entry not found", res.Env.Message)

	res = env.do(t, http.MethodDelete, "/api/experience/"+missing, tok, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = env.do(t, http.MethodDelete, "/api/experience/"+missing, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestContent_OrderedListing(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := env.token(t)

	for _, e := range []map[string]any{
		{"position": "Second", "company": "A", "year": "2021", "order": 2},
		{"position": "First", "company": "B", "year": "2022", "order": 1},
	} {
		res := env.do(t, http.MethodPost, "/api/experience", tok, e)
		require.Equal(t, http.StatusCreated, res.Code)
	}

	res := env.do(t, http.MethodGet, "/api/experience", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var list []struct {
		Position string `json:"position"`
	}
	decodeData(t, res, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Position)
	assert.Equal(t, "Second", list[1].Position)
}
