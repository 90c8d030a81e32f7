package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"photogram/internal/config"
	"photogram/internal/database"
	"photogram/internal/repository"
	"photogram/internal/service"
	"photogram/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fastHasher skips bcrypt so handler tests stay quick.
type fastHasher struct{}

func (fastHasher) Hash(password string) (string, error) { return "h:" + password, nil }
func (fastHasher) Compare(hashed, password string) error {
	if hashed != "h:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type testEnv struct {
	app   *fiber.App
	srv   *Server
	db    *gorm.DB
	media *storage.MemStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenTest()
	require.NoError(t, err)
	media := storage.NewMemStore()
	cfg := &config.Config{Port: "0", MediaRoot: t.TempDir(), Env: "test"}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	srv := &Server{
		config:      cfg,
		db:          db,
		media:       media,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
	}
	srv.authService = service.NewAuthService(userRepo, tokenRepo, fastHasher{}, 0)
	srv.postService = service.NewPostService(postRepo, media)
	srv.commentService = service.NewCommentService(commentRepo, postRepo)
	srv.followService = service.NewFollowService(followRepo, userRepo)
	srv.feedService = service.NewFeedService(postRepo, followRepo)
	srv.userService = service.NewUserService(userRepo, media)

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testEnv{app: app, srv: srv, db: db, media: media}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) multipart(t *testing.T, method, path, token string, fields map[string]string, files map[string][]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// signup registers and logs a user in, returning their id and token.
func (e *testEnv) signup(t *testing.T, username string) (uint, string) {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/register", "", fiber.Map{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.request(t, http.MethodPost, "/login", "", fiber.Map{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	return uint(body["id"].(float64)), body["token"].(string)
}
