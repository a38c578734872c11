package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/api/handler"
	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(userRepo, service.NewMemoryTokenStore(), "test-secret", time.Hour)
	relSvc := service.NewRelationshipService(repository.NewFollowRepository(db), userRepo)
	postSvc := service.NewPostService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewMediaRepository(db),
	)
	watchSvc := service.NewWatchService(
		repository.NewWatchRepository(db, model.TableWatched),
		repository.NewWatchRepository(db, model.TableWatching),
		repository.NewWatchRepository(db, model.TableWatchlist),
	)
	mediaRepo := repository.NewMediaRepository(db)
	h := handler.New(authSvc, relSvc, postSvc, watchSvc, userRepo, mediaRepo)
	return NewRouter(h, authSvc, gin.TestMode)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func signupAndLogin(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"username":   username,
		"email":      email,
		"password":   "longenough1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "longenough1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeData(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignupLoginPostFeed(t *testing.T) {
	r := newTestRouter(t)

	alice := signupAndLogin(t, r, "alice", "alice@example.com")
	bob := signupAndLogin(t, r, "bob", "bob@example.com")

	// bob registers a title and posts about it
	w := doJSON(t, r, http.MethodPost, "/api/v1/media", bob, gin.H{
		"title": "The Matrix", "genre": "Sci-Fi", "year": "1999", "type": "Movie",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var media struct {
		Data model.TVMovie `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &media))

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", bob, gin.H{
		"media_id": media.Data.MediaID,
		"title":    "Matrix Review",
		"content":  "Still holds up.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// alice's feed is empty until she follows bob
	w = doJSON(t, r, http.MethodGet, "/api/v1/feed", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData(t, w)["list"])

	// find bob's id via search, then follow
	w = doJSON(t, r, http.MethodGet, "/api/v1/search?q=bob", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData(t, w)["list"].([]interface{})
	require.Len(t, list, 1)
	bobID := uint(list[0].(map[string]interface{})["user_id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/v1/follows", alice, gin.H{"user_id": bobID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/feed", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decodeData(t, w)["list"].([]interface{})
	require.Len(t, feed, 1)
	item := feed[0].(map[string]interface{})
	assert.Equal(t, "Matrix Review", item["title"])
	assert.Equal(t, "The Matrix", item["media_title"])
	assert.Equal(t, "bob", item["author_name"])
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/feed", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWatchlistRoutes(t *testing.T) {
	r := newTestRouter(t)
	token := signupAndLogin(t, r, "carol", "carol@example.com")

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/watchlist", token, gin.H{"title": "Inception"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/watchlist", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	titles := decodeData(t, w)["titles"].([]interface{})
	assert.Len(t, titles, 1, "duplicate add collapses to one row")

	w = doJSON(t, r, http.MethodDelete, "/api/v1/watchlist", token, gin.H{"title": "Inception"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["removed"])

	// the three relations answer on their own routes
	w = doJSON(t, r, http.MethodGet, "/api/v1/watched", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/v1/watching", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePostForbiddenForNonAuthor(t *testing.T) {
	r := newTestRouter(t)
	author := signupAndLogin(t, r, "dave", "dave@example.com")
	other := signupAndLogin(t, r, "eve", "eve@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/media", author, gin.H{"title": "Dune"})
	require.Equal(t, http.StatusCreated, w.Code)
	var media struct {
		Data model.TVMovie `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &media))

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", author, gin.H{
		"media_id": media.Data.MediaID, "title": "Part Two", "content": "Sand.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	postID := uint(decodeData(t, w)["post_id"].(float64))

	path := fmt.Sprintf("/api/v1/posts/%d", postID)
	w = doJSON(t, r, http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, author, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
