package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	srv, app := newTestServer(t)

	token := register(t, app, "alice")
	createPost(t, app, token, "First", "The body")

	postID := firstPostID(t, srv, "alice")
	post, err := srv.postRepo.GetByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, "First", post.Title)
	assert.Equal(t, "The body", post.Body)
	assert.Equal(t, "alice", post.User.Name)
}

func TestCreatePost_Anonymous(t *testing.T) {
	srv, app := newTestServer(t)

	resp := postForm(t, app, "/createpost", url.Values{
		"title": {"Drive-by"}, "body": {"content"},
	}, "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, srv.db.Table("posts").Count(&count).Error)
	assert.Zero(t, count, "anonymous visitors cannot create posts")
}

func TestCreatePost_EmptyAfterStripping(t *testing.T) {
	srv, app := newTestServer(t)

	token := register(t, app, "alice")
	resp := postForm(t, app, "/createpost", url.Values{
		"title": {"<br>"}, "body": {"content"},
	}, token)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, srv.db.Table("posts").Count(&count).Error)
	assert.Zero(t, count)
}

func TestShowEditScreen(t *testing.T) {
	srv, app := newTestServer(t)

	token := register(t, app, "alice")
	createPost(t, app, token, "Editable", "body text")
	postID := firstPostID(t, srv, "alice")

	resp, body := getPage(t, app, fmt.Sprintf("/edit-post/%d", postID), token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Editable")
	assert.Contains(t, body, "body text")
}

func TestShowEditScreen_NonOwnerRedirected(t *testing.T) {
	srv, app := newTestServer(t)

	alice := register(t, app, "alice")
	createPost(t, app, alice, "Private", "body")
	postID := firstPostID(t, srv, "alice")

	bob := register(t, app, "bob")
	resp, _ := getPage(t, app, fmt.Sprintf("/edit-post/%d", postID), bob)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestUpdatePost_MethodOverride(t *testing.T) {
	srv, app := newTestServer(t)

	token := register(t, app, "alice")
	createPost(t, app, token, "Old title", "Old body")
	postID := firstPostID(t, srv, "alice")

	// The edit form submits POST with a _method=PUT field.
	resp := postForm(t, app, fmt.Sprintf("/edit-post/%d", postID), url.Values{
		"_method": {"PUT"},
		"title":   {"<b>New title</b>"},
		"body":    {"New body"},
	}, token)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	post, err := srv.postRepo.GetByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, "New title", post.Title)
	assert.Equal(t, "New body", post.Body)
}

func TestUpdatePost_NonOwnerLeavesPostUnchanged(t *testing.T) {
	srv, app := newTestServer(t)

	alice := register(t, app, "alice")
	createPost(t, app, alice, "Mine", "original")
	postID := firstPostID(t, srv, "alice")

	bob := register(t, app, "bob")
	resp := postForm(t, app, fmt.Sprintf("/edit-post/%d", postID), url.Values{
		"_method": {"PUT"},
		"title":   {"Hijacked"},
		"body":    {"rewritten"},
	}, bob)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	post, err := srv.postRepo.GetByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", post.Title)
	assert.Equal(t, "original", post.Body)
}

func TestDeletePost_InvalidID(t *testing.T) {
	_, app := newTestServer(t)

	token := register(t, app, "alice")
	resp := postForm(t, app, "/delete-post/abc", url.Values{
		"_method": {"DELETE"},
	}, token)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
