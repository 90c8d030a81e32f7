package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	post := createPostViaAPI(t, env, aliceToken, "discuss", "a.jpg")
	postID := uint(post["id"].(float64))

	t.Run("creates a shaped comment", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, fmt.Sprintf("/comment/%d", postID), bobToken,
			fiber.Map{"body": "great shot"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		comment := body["comment"].(map[string]any)
		assert.Equal(t, "great shot", comment["body"])
		assert.Equal(t, "bob", comment["author"].(map[string]any)["username"])
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, fmt.Sprintf("/comment/%d", postID), bobToken,
			fiber.Map{"body": "   "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing post is 404", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, "/comment/999", bobToken,
			fiber.Map{"body": "hello?"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("anonymous is 401", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, fmt.Sprintf("/comment/%d", postID), "",
			fiber.Map{"body": "drive-by"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestDeleteCommentEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	_, carolToken := env.signup(t, "carol")
	post := createPostViaAPI(t, env, aliceToken, "moderated", "a.jpg")
	postID := uint(post["id"].(float64))

	addComment := func() uint {
		resp := env.request(t, http.MethodPost, fmt.Sprintf("/comment/%d", postID), bobToken,
			fiber.Map{"body": "hm"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		return uint(body["comment"].(map[string]any)["id"].(float64))
	}

	t.Run("author deletes own comment", func(t *testing.T) {
		id := addComment()
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/comment/%d", id), bobToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Ok, comment deleted.", body["msg"])
	})

	t.Run("post owner deletes a stranger's comment", func(t *testing.T) {
		id := addComment()
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/comment/%d", id), aliceToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unrelated user is 403", func(t *testing.T) {
		id := addComment()
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/comment/%d", id), carolToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "You can only delete your own comments.", body["error"])
	})

	t.Run("missing comment is 404", func(t *testing.T) {
		resp := env.request(t, http.MethodDelete, "/comment/999", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
