package mocks

import (
	"context"
	"errors"

	"github.com/article-mirror-api/internal/service"
	"github.com/article-mirror-api/internal/wordpress"
)

// MockUpstreamClient is a mock implementation of the WordPress client
// used by the sync pipeline. Unset funcs fail, so tests only wire what
// they expect to be called.
type MockUpstreamClient struct {
	PostsFunc  func(ctx context.Context) ([]wordpress.Post, error)
	MediaFunc  func(ctx context.Context, href string) (*wordpress.Media, error)
	TermsFunc  func(ctx context.Context, href string) ([]wordpress.Term, error)
	PostsCalls int
	MediaCalls int
	TermsCalls int
}

// Verify interface compliance
var _ service.UpstreamClient = (*MockUpstreamClient)(nil)

func (m *MockUpstreamClient) FetchPosts(ctx context.Context) ([]wordpress.Post, error) {
	m.PostsCalls++
	if m.PostsFunc != nil {
		return m.PostsFunc(ctx)
	}
	return nil, errors.New("unexpected FetchPosts call")
}

func (m *MockUpstreamClient) FetchMedia(ctx context.Context, href string) (*wordpress.Media, error) {
	m.MediaCalls++
	if m.MediaFunc != nil {
		return m.MediaFunc(ctx, href)
	}
	return nil, errors.New("unexpected FetchMedia call")
}

func (m *MockUpstreamClient) FetchTerms(ctx context.Context, href string) ([]wordpress.Term, error) {
	m.TermsCalls++
	if m.TermsFunc != nil {
		return m.TermsFunc(ctx, href)
	}
	return nil, errors.New("unexpected FetchTerms call")
}
