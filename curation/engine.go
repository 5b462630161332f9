package curation

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"coursecraft/models"
)

// ErrNoModules is returned when a draft reaches the engine without any
// modules. Callers should log it and persist the draft as-is; curation is
// never a reason to lose a plan.
var ErrNoModules = errors.New("curation: draft plan has no modules")

const searchTimeout = 10 * time.Second

// Engine replaces each module's placeholder resources with externally
// sourced ones. Enrichment is strictly best effort: a module whose search
// fails keeps an empty resource list, and the plan as a whole always
// survives.
type Engine struct {
	search  Searcher
	timeout time.Duration
}

// NewEngine builds an engine over the given searcher. A nil searcher makes
// Curate the identity, so plan creation still works with no search
// collaborator configured at all.
func NewEngine(search Searcher) *Engine {
	return &Engine{search: search, timeout: searchTimeout}
}

// Curate returns a copy of the plan whose modules carry the search results
// for "{module title} {plan title}". Module order, ids and every other
// field are untouched. Individual search failures or timeouts degrade that
// module to an empty resource list; they never fail the call or affect any
// other module's search.
func (e *Engine) Curate(ctx context.Context, plan *models.CoursePlan) (*models.CoursePlan, error) {
	if e.search == nil {
		return plan, nil
	}
	if len(plan.Modules) == 0 {
		return nil, ErrNoModules
	}

	// One goroutine per module, each writing only its own slot. Every
	// search carries its own timeout; there is no shared budget.
	results := make([][]models.Resource, len(plan.Modules))
	var wg sync.WaitGroup
	for i, module := range plan.Modules {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()

			searchCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			resources, err := e.search.Search(searchCtx, query)
			if err != nil {
				log.Printf("Warning: resource search failed for %q: %v", query, err)
				results[i] = []models.Resource{}
				return
			}
			results[i] = resources
		}(i, module.Title+" "+plan.Title)
	}
	wg.Wait()

	// Reassemble in the original order, swapping only the resource lists.
	curated := *plan
	curated.Modules = make([]models.Module, len(plan.Modules))
	for i, module := range plan.Modules {
		module.Resources = results[i]
		curated.Modules[i] = module
	}
	return &curated, nil
}
