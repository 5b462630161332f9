package curation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"coursecraft/models"

	"github.com/go-resty/resty/v2"
)

const (
	defaultSearchBaseURL = "https://www.googleapis.com/youtube/v3"
	maxResultsPerModule  = 3
)

// Searcher finds external resources for a search query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Resource, error)
}

// YouTubeClient queries the YouTube Data API v3 search endpoint.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

// YouTubeOption configures a YouTubeClient.
type YouTubeOption func(*YouTubeClient)

// WithYouTubeBaseURL overrides the API base URL (for testing).
func WithYouTubeBaseURL(url string) YouTubeOption {
	return func(y *YouTubeClient) {
		y.baseURL = url
	}
}

// NewYouTubeClient builds a search client for the video index.
func NewYouTubeClient(apiKey string, opts ...YouTubeOption) *YouTubeClient {
	y := &YouTubeClient{
		apiKey:  apiKey,
		baseURL: defaultSearchBaseURL,
		http:    resty.New().SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// Available reports whether the client has an API key to search with.
func (y *YouTubeClient) Available() bool {
	return y.apiKey != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to three medium-length tutorial videos for the query.
// Every returned resource is tagged as a video, since a video index is the
// only search collaborator wired up.
func (y *YouTubeClient) Search(ctx context.Context, query string) ([]models.Resource, error) {
	var out searchResponse
	resp, err := y.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":                 "tutorial " + query, // prepending 'tutorial' gives better results
			"part":              "snippet",
			"type":              "video",
			"maxResults":        strconv.Itoa(maxResultsPerModule),
			"videoDuration":     "medium",
			"relevanceLanguage": "en",
			"key":               y.apiKey,
		}).
		SetResult(&out).
		Get(y.baseURL + "/search")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("youtube search returned status %d", resp.StatusCode())
	}

	resources := make([]models.Resource, 0, len(out.Items))
	for _, item := range out.Items {
		resources = append(resources, models.Resource{
			Title: item.Snippet.Title,
			URL:   "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Type:  models.ResourceTypeVideo,
		})
	}
	return resources, nil
}
