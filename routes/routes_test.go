package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"newshub-backend/auth"
	"newshub-backend/controllers"
	"newshub-backend/models"
	"newshub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/golang-jwt/jwt/v5"
)

// memoryStore is an in-memory stand-in for the mongo-backed article store.
type memoryStore struct {
	mu       sync.Mutex
	articles []models.Article
}

func (m *memoryStore) List(ctx context.Context) ([]models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Article, len(m.articles))
	copy(out, m.articles)
	return out, nil
}

func (m *memoryStore) Insert(ctx context.Context, article models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles = append(m.articles, article)
	return nil
}

func (m *memoryStore) ReplaceAll(ctx context.Context, articles []models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles = nil
	m.articles = append(m.articles, articles...)
	return nil
}

func (m *memoryStore) Ping(ctx context.Context) error { return nil }

type mailerStub struct{}

func (mailerStub) Send(msg models.VolunteerMessage) error { return nil }

const testSecret = "routes-test-secret"

func newApp(t *testing.T, upstream []map[string]interface{}) (*gin.Engine, *memoryStore) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ok",
			"totalResults": len(upstream),
			"articles":     upstream,
		})
	}))
	t.Cleanup(srv.Close)

	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := &memoryStore{}
	source := services.NewNewsAPIClient("test-key", srv.URL)
	syncer := services.NewSyncer(source, store, "volunteering", logger)
	verifier := auth.NewJWTVerifier(testSecret, "", "")

	router := gin.New()
	SetupRoutes(router,
		controllers.NewNewsController(store, syncer, logger),
		controllers.NewContactController(mailerStub{}, logger),
		verifier,
		logger,
	)
	return router, store
}

func issueToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "editor",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestFetchThenRead_FullReplaceOrdered(t *testing.T) {
	router, store := newApp(t, []map[string]interface{}{
		{"title": "older", "url": "https://example.com/1", "publishedAt": "2026-03-01T10:00:00Z"},
		{"title": "newer", "url": "https://example.com/2", "publishedAt": "2026-03-02T10:00:00Z"},
	})

	// a stale record that must be gone after the sync
	store.Insert(context.Background(), models.Article{Title: "stale", PublishedAt: time.Now()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/fetch-news", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/news", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var articles []models.Article
	json.Unmarshal(w.Body.Bytes(), &articles)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "newer", articles[0].Title)
	assert.Equal(t, "older", articles[1].Title)
}

func TestFetch_EmptyUpstreamKeepsStore(t *testing.T) {
	router, store := newApp(t, nil)

	existing := models.Article{Title: "keep me", PublishedAt: time.Now()}
	store.Insert(context.Background(), existing)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/fetch-news", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/news", nil))

	var articles []models.Article
	json.Unmarshal(w.Body.Bytes(), &articles)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "keep me", articles[0].Title)
}

func TestCreateArticle_RequiresToken(t *testing.T) {
	router, store := newApp(t, nil)
	body := `{"title":"manual entry"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, len(store.articles))

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer bogus")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, len(store.articles))
}

func TestCreateArticle_WithToken(t *testing.T) {
	router, _ := newApp(t, nil)

	body := `{"title":"manual entry","description":"added by hand"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+issueToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/news", nil))

	var articles []models.Article
	json.Unmarshal(w.Body.Bytes(), &articles)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "manual entry", articles[0].Title)
	if time.Since(articles[0].PublishedAt) > time.Minute {
		t.Errorf("publishedAt not close to call time: %v", articles[0].PublishedAt)
	}
}
