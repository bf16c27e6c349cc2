package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/article-mirror-api/internal/api"
	"github.com/article-mirror-api/internal/auth"
	"github.com/article-mirror-api/internal/mocks"
	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
	"github.com/article-mirror-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const testSecret = "test-secret"

func setupTestRouter() (*gin.Engine, *mocks.MockArticleService, *mocks.MockCommentService, *mocks.MockBookmarkService, *mocks.MockSyncService) {
	gin.SetMode(gin.TestMode)

	mockArticle := &mocks.MockArticleService{}
	mockComment := &mocks.MockCommentService{}
	mockBookmark := &mocks.MockBookmarkService{}
	mockSync := &mocks.MockSyncService{}

	services := &service.Services{
		Article:  mockArticle,
		Comment:  mockComment,
		Bookmark: mockBookmark,
		Sync:     mockSync,
		Stats:    &mocks.MockStatsService{CountsMap: map[string]int{"articles": 3}},
	}

	verifier := auth.NewVerifier(testSecret)
	router := api.NewRouter(services, verifier, zerolog.Nop())

	return router, mockArticle, mockComment, mockBookmark, mockSync
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return "Bearer " + signed
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "article-mirror-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["articles"].(float64) != 3 {
		t.Errorf("Expected 3 articles in metrics, got %v", db["articles"])
	}
}

func TestGetArticle(t *testing.T) {
	router, mockArticle, _, _, _ := setupTestRouter()
	mockArticle.GetFunc = func(ctx context.Context, externalID int64) (*models.Article, error) {
		if externalID != 42 {
			return nil, service.ErrNotFound
		}
		return &models.Article{ExternalID: 42, Title: "Found"}, nil
	}

	req := httptest.NewRequest("GET", "/v1/articles/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var article models.Article
	json.Unmarshal(w.Body.Bytes(), &article)
	if article.ExternalID != 42 {
		t.Errorf("Expected external_id 42, got %d", article.ExternalID)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestGetArticleInvalidID(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSearchArticles(t *testing.T) {
	router, mockArticle, _, _, _ := setupTestRouter()

	var gotSearch string
	mockArticle.ListFunc = func(ctx context.Context, search string) ([]*models.Article, error) {
		gotSearch = search
		return []*models.Article{{ExternalID: 1}}, nil
	}

	req := httptest.NewRequest("GET", "/v1/articles?search=politics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotSearch != "politics" {
		t.Errorf("Expected search query to reach the service, got %q", gotSearch)
	}
}

func TestCreateComment(t *testing.T) {
	router, _, mockComment, _, _ := setupTestRouter()
	mockComment.CreateFunc = func(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error) {
		return &models.Comment{ID: 1, Name: input.Name, Body: input.Body, Active: true}, nil
	}

	body, _ := json.Marshal(models.CommentInput{Name: "Alice", Email: "alice@example.com", Body: "Nice"})
	req := httptest.NewRequest("POST", "/v1/articles/42/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCommentValidationErrors(t *testing.T) {
	router, _, mockComment, _, _ := setupTestRouter()
	mockComment.CreateFunc = func(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error) {
		return nil, &service.ValidationFailedError{
			Errors: []validation.ValidationError{{Field: "email", Message: "invalid email format"}},
		}
	}

	body, _ := json.Marshal(models.CommentInput{Name: "Alice", Email: "bad", Body: "Nice"})
	req := httptest.NewRequest("POST", "/v1/articles/42/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response["errors"]) != 1 {
		t.Errorf("Expected 1 field error in response, got %v", response)
	}
}

func TestBookmarksRequireAuth(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"POST", "/v1/bookmarks"},
		{"GET", "/v1/bookmarks"},
		{"DELETE", "/v1/bookmarks/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestBookmarksRejectInvalidToken(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/bookmarks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestCreateBookmark(t *testing.T) {
	router, _, _, mockBookmark, _ := setupTestRouter()

	var gotUser string
	mockBookmark.CreateFunc = func(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error) {
		gotUser = userID
		return &models.Bookmark{ID: 1, UserID: userID}, nil
	}

	body, _ := json.Marshal(models.BookmarkInput{ArticleID: 42})
	req := httptest.NewRequest("POST", "/v1/bookmarks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "user-a"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotUser != "user-a" {
		t.Errorf("Expected user id from token subject, got %q", gotUser)
	}
}

func TestCreateBookmarkConflict(t *testing.T) {
	router, _, _, mockBookmark, _ := setupTestRouter()
	mockBookmark.CreateFunc = func(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error) {
		return nil, service.ErrAlreadyExists
	}

	body, _ := json.Marshal(models.BookmarkInput{ArticleID: 42})
	req := httptest.NewRequest("POST", "/v1/bookmarks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "user-a"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["detail"] != "Bookmark already exists." {
		t.Errorf("Unexpected conflict message: %v", response)
	}
}

func TestDeleteForeignBookmarkIsNotFound(t *testing.T) {
	router, _, _, mockBookmark, _ := setupTestRouter()
	mockBookmark.DeleteFunc = func(ctx context.Context, userID string, id int64) error {
		return service.ErrNotFound
	}

	req := httptest.NewRequest("DELETE", "/v1/bookmarks/7", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-a"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeleteBookmark(t *testing.T) {
	router, _, _, mockBookmark, _ := setupTestRouter()
	mockBookmark.DeleteFunc = func(ctx context.Context, userID string, id int64) error {
		return nil
	}

	req := httptest.NewRequest("DELETE", "/v1/bookmarks/7", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-a"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
}

func TestSyncTrigger(t *testing.T) {
	router, _, _, _, mockSync := setupTestRouter()
	mockSync.SyncFunc = func(ctx context.Context) (*service.SyncResult, error) {
		return &service.SyncResult{Fetched: 10, Created: 2, Skipped: 8}, nil
	}

	req := httptest.NewRequest("POST", "/v1/sync", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result service.SyncResult
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.Created != 2 {
		t.Errorf("Expected created=2 in response, got %d", result.Created)
	}
}

func TestSyncTriggerConflictWhileRunning(t *testing.T) {
	router, _, _, _, mockSync := setupTestRouter()
	mockSync.SyncFunc = func(ctx context.Context) (*service.SyncResult, error) {
		return nil, service.ErrSyncInProgress
	}

	req := httptest.NewRequest("POST", "/v1/sync", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}
}
