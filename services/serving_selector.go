package services

import (
	"github.com/shyamrajvs/hungrx-admin/entity"
)

// ServingSelector tracks which serving variant of a dish card is displayed.
type ServingSelector struct {
	dish     *entity.Dish
	selected *entity.ServingInfo
}

// NewServingSelector starts on the dish's first serving, or nil when the
// dish has none (the card then shows its "no serving info" state).
func NewServingSelector(dish *entity.Dish) *ServingSelector {
	s := &ServingSelector{}
	s.SetDish(dish)
	return s
}

func (s *ServingSelector) Selected() *entity.ServingInfo {
	return s.selected
}

// Select accepts any serving of the displayed dish; no validation.
func (s *ServingSelector) Select(info entity.ServingInfo) {
	s.selected = &info
}

// SetDish re-derives the selection when the underlying dish changes (for
// example after an edit), instead of keeping a stale pointer.
func (s *ServingSelector) SetDish(dish *entity.Dish) {
	s.dish = dish
	if dish == nil || len(dish.ServingInfos) == 0 {
		s.selected = nil
		return
	}
	first := dish.ServingInfos[0].ServingInfo
	s.selected = &first
}
