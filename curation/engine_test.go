package curation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"coursecraft/models"
)

// fakeSearcher returns canned resources per query and can be told to fail
// for specific queries. Curate calls Search from one goroutine per module,
// so the query log is mutex-guarded.
type fakeSearcher struct {
	mu      sync.Mutex
	failFor map[string]bool
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]models.Resource, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.failFor[query] {
		return nil, errors.New("search exploded")
	}
	return []models.Resource{
		{Title: "Result for " + query, URL: "https://www.youtube.com/watch?v=abc", Type: models.ResourceTypeVideo},
	}, nil
}

func draftPlanWithModules(n int) *models.CoursePlan {
	plan := &models.CoursePlan{Title: "Go Mastery"}
	for i := 0; i < n; i++ {
		plan.Modules = append(plan.Modules, models.Module{
			ID:            fmt.Sprintf("mod-%d", i),
			Week:          i + 1,
			Title:         fmt.Sprintf("Topic %d", i),
			Description:   "desc",
			DurationHours: 5,
			Resources: []models.Resource{
				{Title: "Placeholder", URL: "https://placeholder.com/resource", Type: models.ResourceTypeArticle},
			},
		})
	}
	return plan
}

func TestCurate_PreservesOrderAndIdentity(t *testing.T) {
	plan := draftPlanWithModules(5)
	engine := NewEngine(&fakeSearcher{})

	curated, err := engine.Curate(context.Background(), plan)
	if err != nil {
		t.Fatalf("Curate() error = %v", err)
	}

	if len(curated.Modules) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(curated.Modules))
	}
	for i, m := range curated.Modules {
		if m.ID != fmt.Sprintf("mod-%d", i) {
			t.Errorf("module %d: id changed to %s", i, m.ID)
		}
		if m.Week != i+1 {
			t.Errorf("module %d: week changed to %d", i, m.Week)
		}
		if len(m.Resources) != 1 || m.Resources[0].Type != models.ResourceTypeVideo {
			t.Errorf("module %d: placeholder resources not replaced", i)
		}
	}
}

func TestCurate_QueryComposition(t *testing.T) {
	plan := draftPlanWithModules(1)
	searcher := &fakeSearcher{}
	engine := NewEngine(searcher)

	if _, err := engine.Curate(context.Background(), plan); err != nil {
		t.Fatalf("Curate() error = %v", err)
	}

	if len(searcher.queries) != 1 {
		t.Fatalf("expected 1 search, got %d", len(searcher.queries))
	}
	// The query contract: "{module title} {plan title}".
	if searcher.queries[0] != "Topic 0 Go Mastery" {
		t.Errorf("unexpected query: %q", searcher.queries[0])
	}
}

func TestCurate_IsolatesFailures(t *testing.T) {
	plan := draftPlanWithModules(3)
	searcher := &fakeSearcher{failFor: map[string]bool{"Topic 1 Go Mastery": true}}
	engine := NewEngine(searcher)

	curated, err := engine.Curate(context.Background(), plan)
	if err != nil {
		t.Fatalf("Curate() must not fail on a degraded module: %v", err)
	}

	if len(curated.Modules[1].Resources) != 0 {
		t.Errorf("failed module should degrade to an empty resource list, got %d", len(curated.Modules[1].Resources))
	}
	for _, i := range []int{0, 2} {
		if len(curated.Modules[i].Resources) != 1 {
			t.Errorf("module %d lost its results to a neighbor's failure", i)
		}
		if !strings.HasPrefix(curated.Modules[i].Resources[0].Title, "Result for") {
			t.Errorf("module %d has unexpected resource %q", i, curated.Modules[i].Resources[0].Title)
		}
	}
}

func TestCurate_NoSearcherIsIdentity(t *testing.T) {
	plan := draftPlanWithModules(2)
	engine := NewEngine(nil)

	curated, err := engine.Curate(context.Background(), plan)
	if err != nil {
		t.Fatalf("Curate() error = %v", err)
	}
	if curated != plan {
		t.Error("with no searcher, Curate must return the draft unchanged")
	}
	if curated.Modules[0].Resources[0].Type != models.ResourceTypeArticle {
		t.Error("placeholder resources must survive when curation is unavailable")
	}
}

func TestCurate_EmptyDraftIsAnError(t *testing.T) {
	engine := NewEngine(&fakeSearcher{})

	_, err := engine.Curate(context.Background(), &models.CoursePlan{Title: "empty"})
	if !errors.Is(err, ErrNoModules) {
		t.Fatalf("expected ErrNoModules, got %v", err)
	}
}

func TestCurate_DoesNotMutateInput(t *testing.T) {
	plan := draftPlanWithModules(2)
	engine := NewEngine(&fakeSearcher{})

	if _, err := engine.Curate(context.Background(), plan); err != nil {
		t.Fatalf("Curate() error = %v", err)
	}

	if plan.Modules[0].Resources[0].Type != models.ResourceTypeArticle {
		t.Error("input draft was mutated")
	}
}
