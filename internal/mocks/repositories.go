package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/repository"
	"github.com/lib/pq"
)

// MockArticleRepository is an in-memory implementation of
// ArticleRepository. It enforces the external_id uniqueness constraint
// the way the real store does, returning a pq unique violation on a
// duplicate insert.
type MockArticleRepository struct {
	mu          sync.Mutex
	Articles    map[int64]*models.Article // keyed by external id
	CategoryIDs map[int64][]int64         // article id -> category ids
	CreateError error
	CreateCalls int
	nextID      int64
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:    make(map[int64]*models.Article),
		CategoryIDs: make(map[int64][]int64),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article, categoryIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.Articles[article.ExternalID]; exists {
		return &pq.Error{Code: "23505", Constraint: "articles_external_id_key"}
	}

	m.nextID++
	article.ID = m.nextID
	m.Articles[article.ExternalID] = article
	m.CategoryIDs[article.ID] = categoryIDs
	return nil
}

func (m *MockArticleRepository) GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	article, ok := m.Articles[externalID]
	if !ok {
		return nil, nil
	}
	return article, nil
}

func (m *MockArticleRepository) ExistsByExternalID(ctx context.Context, externalID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.Articles[externalID]
	return ok, nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) Search(ctx context.Context, query string) ([]*models.Article, error) {
	all, _ := m.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*models.Article
	for _, a := range all {
		if containsFold(a.Title, query) || containsFold(a.Content, query) {
			matched = append(matched, a)
			continue
		}
		for _, c := range a.Categories {
			if containsFold(c.Name, query) {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

// MockCategoryRepository is an in-memory implementation of
// CategoryRepository with get-or-create semantics keyed by name.
type MockCategoryRepository struct {
	mu               sync.Mutex
	Categories       map[string]*models.Category
	GetOrCreateError error
	GetOrCreateCalls int
	nextID           int64
}

// Verify interface compliance
var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[string]*models.Category),
	}
}

func (m *MockCategoryRepository) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetOrCreateCalls++
	if m.GetOrCreateError != nil {
		return nil, m.GetOrCreateError
	}
	if category, ok := m.Categories[name]; ok {
		return category, nil
	}

	m.nextID++
	category := &models.Category{ID: m.nextID, Name: name}
	m.Categories[name] = category
	return category, nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Categories), nil
}

// MockCommentRepository is an in-memory implementation of CommentRepository
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    []*models.Comment
	CreateError error
	nextID      int64
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}

	m.nextID++
	comment.ID = m.nextID
	now := time.Now()
	comment.Created = now
	comment.Updated = now
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) ListActiveByArticle(ctx context.Context, articleID int64) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var comments []*models.Comment
	for _, comment := range m.Comments {
		if comment.ArticleID == articleID && comment.Active {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].Created.Before(comments[j].Created)
	})
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), nil
}

// MockBookmarkRepository is an in-memory implementation of
// BookmarkRepository enforcing the one-bookmark-per-(user, article)
// invariant.
type MockBookmarkRepository struct {
	mu          sync.Mutex
	Bookmarks   map[string]*models.Bookmark // keyed by user|article
	CreateError error
	nextID      int64
}

// Verify interface compliance
var _ repository.BookmarkRepository = (*MockBookmarkRepository)(nil)

func NewMockBookmarkRepository() *MockBookmarkRepository {
	return &MockBookmarkRepository{
		Bookmarks: make(map[string]*models.Bookmark),
	}
}

func bookmarkKey(userID string, articleID int64) string {
	return fmt.Sprintf("%s|%d", userID, articleID)
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return false, m.CreateError
	}

	key := bookmarkKey(bookmark.UserID, bookmark.ArticleID)
	if _, exists := m.Bookmarks[key]; exists {
		return false, nil
	}

	m.nextID++
	bookmark.ID = m.nextID
	bookmark.CreatedAt = time.Now()
	m.Bookmarks[key] = bookmark
	return true, nil
}

func (m *MockBookmarkRepository) ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var bookmarks []*models.Bookmark
	for _, bookmark := range m.Bookmarks {
		if bookmark.UserID == userID {
			bookmarks = append(bookmarks, bookmark)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
	})
	return bookmarks, nil
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, bookmark := range m.Bookmarks {
		if bookmark.ID == id && bookmark.UserID == userID {
			delete(m.Bookmarks, key)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockBookmarkRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Bookmarks), nil
}

// NewRepositories bundles the mock repositories the way repository.New
// bundles the real ones.
func NewRepositories(article *MockArticleRepository, category *MockCategoryRepository, comment *MockCommentRepository, bookmark *MockBookmarkRepository) *repository.Repositories {
	return &repository.Repositories{
		Article:  article,
		Category: category,
		Comment:  comment,
		Bookmark: bookmark,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
