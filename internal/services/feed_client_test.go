package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFeedClient_FetchSuccess(t *testing.T) {
	const doc = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(doc))
	}))
	defer server.Close()

	client := NewFeedClient(5*time.Second, "stayflow-backoffice/1.0 calendar-sync")
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if body != doc {
		t.Errorf("Unexpected body: %q", body)
	}
	if !strings.Contains(gotUserAgent, "stayflow-backoffice") {
		t.Errorf("Expected identifying user agent, got %q", gotUserAgent)
	}
}

func TestFeedClient_FetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "calendar not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewFeedClient(5*time.Second, "test")
	_, err := client.Fetch(context.Background(), server.URL)

	var fetchErr *FeedFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FeedFetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", fetchErr.Status)
	}
	if !strings.Contains(fetchErr.BodyExcerpt, "calendar not found") {
		t.Errorf("Expected body excerpt, got %q", fetchErr.BodyExcerpt)
	}
}

func TestFeedClient_ExpiredTokenDetected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid token for this calendar", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewFeedClient(5*time.Second, "test")
	_, err := client.Fetch(context.Background(), server.URL)

	var expiredErr *FeedExpiredError
	if !errors.As(err, &expiredErr) {
		t.Fatalf("Expected FeedExpiredError, got %v", err)
	}
	if expiredErr.Status != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", expiredErr.Status)
	}
}

func TestFeedClient_TransportFailure(t *testing.T) {
	client := NewFeedClient(time.Second, "test")
	_, err := client.Fetch(context.Background(), "http://127.0.0.1:1/feed.ics")

	var fetchErr *FeedFetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected FeedFetchError for transport failure, got %v", err)
	}
}
