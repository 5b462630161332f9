package curation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecraft/models"
)

func TestYouTubeSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "tutorial Goroutines Go Mastery" {
			t.Errorf("unexpected query: %q", q.Get("q"))
		}
		if q.Get("maxResults") != "3" {
			t.Errorf("expected maxResults=3, got %s", q.Get("maxResults"))
		}
		if q.Get("videoDuration") != "medium" {
			t.Errorf("expected videoDuration=medium, got %s", q.Get("videoDuration"))
		}
		if q.Get("type") != "video" {
			t.Errorf("expected type=video, got %s", q.Get("type"))
		}
		if q.Get("key") != "yt-key" {
			t.Errorf("missing API key")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":      map[string]string{"videoId": "abc123"},
					"snippet": map[string]string{"title": "Goroutines explained"},
				},
				{
					"id":      map[string]string{"videoId": "def456"},
					"snippet": map[string]string{"title": "Concurrency patterns"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewYouTubeClient("yt-key", WithYouTubeBaseURL(server.URL))

	resources, err := client.Search(context.Background(), "Goroutines Go Mastery")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
	if resources[0].URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected url: %s", resources[0].URL)
	}
	for _, r := range resources {
		if r.Type != models.ResourceTypeVideo {
			t.Errorf("curated resource %q must be tagged video, got %s", r.Title, r.Type)
		}
	}
}

func TestYouTubeSearch_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewYouTubeClient("yt-key", WithYouTubeBaseURL(server.URL))

	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error on upstream failure")
	}
}

func TestYouTubeClient_Availability(t *testing.T) {
	if NewYouTubeClient("").Available() {
		t.Error("client without an API key must report unavailable")
	}
	if !NewYouTubeClient("yt-key").Available() {
		t.Error("client with an API key must report available")
	}
}
