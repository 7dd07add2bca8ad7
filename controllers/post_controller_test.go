package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/miniblog/models"
)

type postEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Post models.Post `json:"post"`
	} `json:"data"`
}

func decodePost(t *testing.T, w *httptest.ResponseRecorder) models.Post {
	t.Helper()

	var env postEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data.Post
}

func TestCreatePost(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/users/", gin.H{"username": "alice"})

	w := doRequest(t, r, http.MethodPost, "/posts/", gin.H{
		"title":   "first post",
		"content": "hello world",
		"user_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	post := decodePost(t, w)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "first post", post.Title)
	assert.Equal(t, "hello world", post.Content)
	assert.EqualValues(t, 1, post.UserID)
}

func TestCreatePost_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/posts/", gin.H{"title": "no content"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPost_RoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/users/", gin.H{"username": "bob"})
	created := decodePost(t, doRequest(t, r, http.MethodPost, "/posts/", gin.H{
		"title":   "round trip",
		"content": "same on the way back",
		"user_id": 1,
	}))

	w := doRequest(t, r, http.MethodGet, "/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodePost(t, w))
}

func TestGetPost_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/posts/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var env postEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "post not found", env.Message)
}

func TestUpdatePost_TitleOnlyLeavesRest(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/users/", gin.H{"username": "carol"})
	doRequest(t, r, http.MethodPost, "/posts/", gin.H{
		"title":   "old title",
		"content": "untouched content",
		"user_id": 1,
	})

	w := doRequest(t, r, http.MethodPut, "/posts/1", gin.H{"title": "new title"})
	require.Equal(t, http.StatusOK, w.Code)

	post := decodePost(t, w)
	assert.Equal(t, "new title", post.Title)
	assert.Equal(t, "untouched content", post.Content)
	assert.EqualValues(t, 1, post.UserID)
}

func TestUpdatePost_EmptyPayloadIsNoOp(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/users/", gin.H{"username": "dave"})
	doRequest(t, r, http.MethodPost, "/posts/", gin.H{
		"title":   "stable",
		"content": "still here",
		"user_id": 1,
	})

	w := doRequest(t, r, http.MethodPut, "/posts/1", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	post := decodePost(t, w)
	assert.Equal(t, "stable", post.Title)
	assert.Equal(t, "still here", post.Content)
}

func TestUpdatePost_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/posts/9999", gin.H{"title": "nothing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost_ThenGet(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/users/", gin.H{"username": "erin"})
	doRequest(t, r, http.MethodPost, "/posts/", gin.H{
		"title":   "short lived",
		"content": "deleted soon",
		"user_id": 1,
	})

	w := doRequest(t, r, http.MethodDelete, "/posts/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, "/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/posts/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
