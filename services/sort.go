package services

import (
	"sort"
	"time"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

// sortLatestFirst orders items by timestamp descending. The sort is stable:
// entries with equal timestamps keep their input order.
func sortLatestFirst[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}

// SortDishesLatestFirst is the single comparator for every dish list the UI
// renders (grouped buckets and search results alike).
func SortDishesLatestFirst(dishes []entity.Dish) {
	sortLatestFirst(dishes, func(d entity.Dish) time.Time { return d.UpdatedAt })
}

func sortRestaurantsLatestFirst(rs []entity.Restaurant) {
	sortLatestFirst(rs, restaurantTouchedAt)
}

// restaurantTouchedAt falls back to createdAt for rows the server never
// updated after creation.
func restaurantTouchedAt(r entity.Restaurant) time.Time {
	if !r.UpdatedAt.IsZero() {
		return r.UpdatedAt
	}
	return r.CreatedAt
}
