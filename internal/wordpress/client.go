package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the upstream WordPress REST API. All calls are
// synchronous and bounded by the configured timeout; follow-up fetches
// (media, terms) use the absolute hrefs embedded in each post record.
type Client struct {
	postsURL string
	perPage  int
	http     *http.Client
	log      zerolog.Logger
}

// NewClient creates a WordPress API client.
func NewClient(postsURL string, perPage int, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		postsURL: postsURL,
		perPage:  perPage,
		http:     &http.Client{Timeout: timeout},
		log:      log.With().Str("component", "wordpress").Logger(),
	}
}

// FetchPosts retrieves one page of the upstream posts listing.
// Only the first page is fetched; pagination is deliberately out of scope.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	u, err := url.Parse(c.postsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid posts URL: %w", err)
	}
	if c.perPage > 0 {
		q := u.Query()
		q.Set("per_page", strconv.Itoa(c.perPage))
		u.RawQuery = q.Encode()
	}

	var posts []Post
	if err := c.getJSON(ctx, u.String(), &posts); err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	c.log.Debug().Int("count", len(posts)).Msg("Fetched upstream posts")
	return posts, nil
}

// FetchMedia retrieves a featured-media record by its href.
func (c *Client) FetchMedia(ctx context.Context, href string) (*Media, error) {
	var media Media
	if err := c.getJSON(ctx, href, &media); err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	return &media, nil
}

// FetchTerms retrieves the taxonomy terms listed at the given href.
func (c *Client) FetchTerms(ctx context.Context, href string) ([]Term, error) {
	var terms []Term
	if err := c.getJSON(ctx, href, &terms); err != nil {
		return nil, fmt.Errorf("fetch terms: %w", err)
	}
	return terms, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
