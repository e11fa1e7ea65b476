package services

import (
	"context"
	"strings"
	"sync"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

// DishSearchAPI is the single call the dish search needs.
type DishSearchAPI interface {
	SearchDish(ctx context.Context, restaurantID, query string) ([]entity.Dish, error)
}

// DishSearch runs the per-restaurant dish search. Results are nil while not
// searching (the page shows the grouped view), empty when a search matched
// nothing or failed.
type DishSearch struct {
	api          DishSearchAPI
	restaurantID string

	mu      sync.Mutex
	token   uint64
	results []entity.Dish
}

func NewDishSearch(api DishSearchAPI, restaurantID string) *DishSearch {
	return &DishSearch{api: api, restaurantID: restaurantID}
}

// Search normalizes the query (trim + lowercase) and fetches matches. Each
// call takes a fresh token; a response arriving after a newer call started
// is dropped, so only the query the user settled on renders.
func (s *DishSearch) Search(ctx context.Context, query string) error {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		s.Clear()
		return nil
	}

	s.mu.Lock()
	s.token++
	token := s.token
	s.mu.Unlock()

	results, err := s.api.SearchDish(ctx, s.restaurantID, normalized)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return nil // superseded
	}
	if err != nil {
		s.results = []entity.Dish{}
		return err
	}
	if results == nil {
		results = []entity.Dish{}
	}
	s.results = results
	return nil
}

// Clear leaves search mode. Pending responses are invalidated.
func (s *DishSearch) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	s.results = nil
}

// Active reports whether a search result set (possibly empty) should be
// rendered instead of the grouped view.
func (s *DishSearch) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results != nil
}

func (s *DishSearch) Results() []entity.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return nil
	}
	out := make([]entity.Dish, len(s.results))
	copy(out, s.results)
	return out
}
