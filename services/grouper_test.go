package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

func day(n int) time.Time {
	return time.Date(2024, 5, n, 12, 0, 0, 0, time.UTC)
}

func TestGroupDishes(t *testing.T) {
	categories := []entity.Category{
		{
			CategoryID:   "cat-main",
			CategoryName: "Mains",
			SubCategories: []entity.SubCategory{
				{SubCategoryID: "sub-grill", SubCategoryName: "Grill"},
				{SubCategoryID: "sub-wok", SubCategoryName: "Wok"},
			},
		},
		{CategoryID: "cat-dessert", CategoryName: "Desserts"},
	}
	dishes := []entity.Dish{
		{ID: "d1", DishName: "Steak", CategoryID: "cat-main", SubCategoryID: "sub-grill", UpdatedAt: day(1)},
		{ID: "d2", DishName: "Ribs", CategoryID: "cat-main", SubCategoryID: "sub-grill", UpdatedAt: day(3)},
		{ID: "d3", DishName: "Soup", CategoryID: "cat-main", UpdatedAt: day(2)},
		{ID: "d4", DishName: "Cake", CategoryID: "cat-dessert", UpdatedAt: day(1)},
		{ID: "d5", DishName: "Ghost", CategoryID: "cat-unknown", UpdatedAt: day(9)},
	}

	view := GroupDishes(categories, dishes)

	assert.Len(t, view.Categories, 2)

	mains := view.Categories[0]
	assert.Equal(t, "Mains", mains.CategoryName)
	assert.Len(t, mains.Dishes, 1)
	assert.Equal(t, "d3", mains.Dishes[0].ID)

	grill := mains.SubCategories[0]
	assert.Equal(t, "Grill", grill.SubCategoryName)
	// updatedAt descending
	assert.Equal(t, []string{"d2", "d1"}, []string{grill.Dishes[0].ID, grill.Dishes[1].ID})
	assert.Empty(t, mains.SubCategories[1].Dishes)

	desserts := view.Categories[1]
	assert.Len(t, desserts.Dishes, 1)
	assert.Equal(t, "d4", desserts.Dishes[0].ID)

	// the unknown-category dish appears in no bucket but is counted
	assert.Equal(t, 1, view.Orphans)
}

func TestGroupDishesStableOnEqualTimestamps(t *testing.T) {
	categories := []entity.Category{{CategoryID: "c1", CategoryName: "One"}}
	same := day(4)
	dishes := []entity.Dish{
		{ID: "first", CategoryID: "c1", UpdatedAt: same},
		{ID: "second", CategoryID: "c1", UpdatedAt: same},
		{ID: "third", CategoryID: "c1", UpdatedAt: same},
	}

	view := GroupDishes(categories, dishes)

	got := make([]string, 0, 3)
	for _, d := range view.Categories[0].Dishes {
		got = append(got, d.ID)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestGroupDishesSubcategoryNeedsMatchingCategory(t *testing.T) {
	categories := []entity.Category{
		{
			CategoryID:    "c1",
			CategoryName:  "One",
			SubCategories: []entity.SubCategory{{SubCategoryID: "s1", SubCategoryName: "Sub"}},
		},
	}
	// subcategory id matches but the category id does not
	dishes := []entity.Dish{{ID: "d1", CategoryID: "other", SubCategoryID: "s1", UpdatedAt: day(1)}}

	view := GroupDishes(categories, dishes)

	assert.Empty(t, view.Categories[0].SubCategories[0].Dishes)
	assert.Equal(t, 1, view.Orphans)
}

func TestGroupDishesDoesNotMutateInput(t *testing.T) {
	categories := []entity.Category{{CategoryID: "c1", CategoryName: "One"}}
	dishes := []entity.Dish{
		{ID: "old", CategoryID: "c1", UpdatedAt: day(1)},
		{ID: "new", CategoryID: "c1", UpdatedAt: day(2)},
	}

	GroupDishes(categories, dishes)

	// input order untouched even though the bucket was re-sorted
	assert.Equal(t, "old", dishes[0].ID)
	assert.Equal(t, "new", dishes[1].ID)
}
