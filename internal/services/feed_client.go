package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const feedBodyExcerptLimit = 512

// FeedClient fetches external calendar feeds over plain HTTP GET. Platform
// feed URLs are unauthenticated apart from their embedded token.
type FeedClient struct {
	httpClient *http.Client
	userAgent  string
}

// NewFeedClient creates a feed client with the given fetch timeout. A slow
// upstream must not hang a sync forever.
func NewFeedClient(timeout time.Duration, userAgent string) *FeedClient {
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Fetch retrieves the feed body. Any transport failure or non-2xx status
// maps to *FeedFetchError; a body carrying the "invalid token" marker maps
// to *FeedExpiredError.
func (c *FeedClient) Fetch(ctx context.Context, feedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", &FeedFetchError{Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/calendar, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FeedFetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FeedFetchError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := bodyExcerpt(body)
		if strings.Contains(strings.ToLower(excerpt), "invalid token") {
			return "", &FeedExpiredError{Status: resp.StatusCode}
		}
		return "", &FeedFetchError{Status: resp.StatusCode, BodyExcerpt: excerpt}
	}

	return string(body), nil
}

func bodyExcerpt(body []byte) string {
	if len(body) > feedBodyExcerptLimit {
		body = body[:feedBodyExcerptLimit]
	}
	return strings.TrimSpace(string(body))
}
