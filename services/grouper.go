package services

import (
	"github.com/shyamrajvs/hungrx-admin/entity"
)

// SubCategoryGroup is one subcategory bucket of the grouped render model.
type SubCategoryGroup struct {
	SubCategoryID   string
	SubCategoryName string
	Dishes          []entity.Dish
}

// CategoryGroup holds a category's directly attached dishes (no subcategory)
// plus one bucket per subcategory.
type CategoryGroup struct {
	CategoryID    string
	CategoryName  string
	Dishes        []entity.Dish
	SubCategories []SubCategoryGroup
}

// GroupedDishView is recomputed on every render. Orphans counts dishes that
// landed in no bucket (unknown category or unknown subcategory id); they
// still exist in the flat collection.
type GroupedDishView struct {
	Categories []CategoryGroup
	Orphans    int
}

// GroupDishes builds the category → subcategory → dishes render model. Pure:
// inputs are not mutated and the result is deterministic. A dish with a
// subcategory id is bucketed only where both its category and subcategory
// match; a dish with only a category id goes into that category's direct
// bucket. Every bucket is sorted by updatedAt descending, stable.
func GroupDishes(categories []entity.Category, dishes []entity.Dish) GroupedDishView {
	view := GroupedDishView{Categories: make([]CategoryGroup, 0, len(categories))}
	placed := make([]bool, len(dishes))

	for _, cat := range categories {
		group := CategoryGroup{
			CategoryID:    cat.CategoryID,
			CategoryName:  cat.CategoryName,
			SubCategories: make([]SubCategoryGroup, 0, len(cat.SubCategories)),
		}
		for i, d := range dishes {
			if d.CategoryID == cat.CategoryID && d.SubCategoryID == "" {
				group.Dishes = append(group.Dishes, d)
				placed[i] = true
			}
		}
		SortDishesLatestFirst(group.Dishes)

		for _, sub := range cat.SubCategories {
			bucket := SubCategoryGroup{
				SubCategoryID:   sub.SubCategoryID,
				SubCategoryName: sub.SubCategoryName,
			}
			for i, d := range dishes {
				if d.CategoryID == cat.CategoryID && d.SubCategoryID == sub.SubCategoryID {
					bucket.Dishes = append(bucket.Dishes, d)
					placed[i] = true
				}
			}
			SortDishesLatestFirst(bucket.Dishes)
			group.SubCategories = append(group.SubCategories, bucket)
		}
		view.Categories = append(view.Categories, group)
	}

	for _, ok := range placed {
		if !ok {
			view.Orphans++
		}
	}
	return view
}
