package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyamrajvs/hungrx-admin/client"
	"github.com/shyamrajvs/hungrx-admin/entity"
)

type fakeDishAPI struct {
	categories []entity.Category

	createCategoryErr error
	createDishErr     error
	createDishBlock   chan struct{}

	createdCategories    []string
	createdSubCategories []string

	lastCategoryID    string
	lastSubCategoryID string
	lastDishID        string
	lastPayload       *entity.DishPayload
	editCalls         int
	createCalls       int
}

func (f *fakeDishAPI) AllDishes(ctx context.Context, restaurantID string) (*client.RestaurantDishes, error) {
	return &client.RestaurantDishes{Categories: f.categories}, nil
}

func (f *fakeDishAPI) CreateCategory(ctx context.Context, restaurantID, name string) error {
	if f.createCategoryErr != nil {
		return f.createCategoryErr
	}
	f.createdCategories = append(f.createdCategories, name)
	f.categories = append(f.categories, entity.Category{
		CategoryID:   "cat-" + name,
		CategoryName: name,
	})
	return nil
}

func (f *fakeDishAPI) CreateSubCategory(ctx context.Context, restaurantID, categoryID, name string) error {
	f.createdSubCategories = append(f.createdSubCategories, name)
	for i := range f.categories {
		if f.categories[i].CategoryID == categoryID {
			f.categories[i].SubCategories = append(f.categories[i].SubCategories, entity.SubCategory{
				SubCategoryID:   "sub-" + name,
				SubCategoryName: name,
			})
		}
	}
	return nil
}

func (f *fakeDishAPI) CreateDish(ctx context.Context, categoryID, subCategoryID string, payload *entity.DishPayload) (*entity.Dish, error) {
	if f.createDishBlock != nil {
		<-f.createDishBlock
	}
	f.createCalls++
	f.lastCategoryID = categoryID
	f.lastSubCategoryID = subCategoryID
	f.lastPayload = payload
	if f.createDishErr != nil {
		return nil, f.createDishErr
	}
	return &entity.Dish{ID: "new-dish"}, nil
}

func (f *fakeDishAPI) EditDish(ctx context.Context, dishID, newCategoryID, newSubCategoryID string, payload *entity.DishPayload) (*entity.Dish, error) {
	f.editCalls++
	f.lastDishID = dishID
	f.lastCategoryID = newCategoryID
	f.lastSubCategoryID = newSubCategoryID
	f.lastPayload = payload
	return &entity.Dish{ID: dishID}, nil
}

func TestDishFormDescriptionClamp(t *testing.T) {
	f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})

	f.SetDescription(strings.Repeat("a", 200))
	assert.Len(t, f.Description(), 150)

	// clamp is silent truncation, re-applied on every edit
	f.SetDescription("short")
	assert.Equal(t, "short", f.Description())
}

func TestDishFormUpdateServingField(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value string
		want  string
	}{
		{"price accepts plain decimal", "price", "12.30", "12.30"},
		{"price accepts empty", "price", "", ""},
		{"price accepts zero", "price", "0", "0"},
		{"price rejects double dot", "price", "12.3.4", ""},
		{"price rejects negative", "price", "-5", ""},
		{"price rejects letters", "price", "abc", ""},
		{"size accepts anything", "size", "Family (4-6)", "Family (4-6)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})
			f.AddServingRow()
			f.UpdateServingField(0, tt.path, tt.value)
			got := *f.ServingRows[0].field(tt.path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDishFormNutritionPathIsPriceFree(t *testing.T) {
	f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})
	f.AddServingRow()

	// the nutrition inputs share the numeric guard only when the path
	// mentions price; calories goes through untouched
	f.UpdateServingField(0, "nutritionFacts.calories", "540")
	assert.Equal(t, "540", f.ServingRows[0].NutritionFacts.Calories)

	// rejected price leaves the row unchanged
	f.UpdateServingField(0, "price", "bad")
	assert.Equal(t, "", f.ServingRows[0].Price)
}

func TestDishFormServingRows(t *testing.T) {
	f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})
	f.AddServingRow()
	f.AddServingRow()
	assert.Len(t, f.ServingRows, 2)

	f.RemoveServingRow(5) // out of range: no-op
	f.RemoveServingRow(-1)
	assert.Len(t, f.ServingRows, 2)

	f.UpdateServingField(0, "size", "Small")
	f.UpdateServingField(1, "size", "Large")
	f.RemoveServingRow(0)
	require.Len(t, f.ServingRows, 1)
	assert.Equal(t, "Large", f.ServingRows[0].Size)
}

func TestDishFormLoadForEditToleratesPartialData(t *testing.T) {
	cal := decimal.NewFromInt(540)
	dish := &entity.Dish{
		ID:         "d1",
		DishName:   "Bowl",
		CategoryID: "c1",
		ServingInfos: []entity.ServingInfoEntry{
			{ServingInfo: entity.ServingInfo{
				Size:  "Small",
				Price: "5.00",
				NutritionFacts: entity.NutritionFacts{
					Calories: entity.NutritionValue{Value: &cal, Unit: "cal"},
					// protein/carbs/fat never entered
				},
			}},
			{ServingInfo: entity.ServingInfo{}}, // fully empty serving
		},
		UpdatedAt: time.Now(),
	}

	f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})
	f.LoadForEdit(dish)

	require.Len(t, f.ServingRows, 2)
	assert.Equal(t, "5.00", f.ServingRows[0].Price)
	assert.Equal(t, "540", f.ServingRows[0].NutritionFacts.Calories)
	assert.Equal(t, "", f.ServingRows[0].NutritionFacts.Protein)
	assert.Equal(t, "", f.ServingRows[1].Size)
	assert.Equal(t, "", f.ServingRows[1].NutritionFacts.TotalFat)
}

func TestDishFormCreateCategoryAutoSelects(t *testing.T) {
	api := &fakeDishAPI{}
	f := NewDishForm(api, "r1", DishFormCallbacks{})
	f.NewCategory = "Starters"

	err := f.CreateCategory(context.Background(), "Starters")
	require.NoError(t, err)

	assert.Equal(t, []string{"Starters"}, api.createdCategories)
	assert.Equal(t, "cat-Starters", f.SelectedCategoryID)
	assert.Empty(t, f.SelectedSubCategoryID)
	assert.Empty(t, f.NewCategory)
}

func TestDishFormCreateCategoryBlankName(t *testing.T) {
	api := &fakeDishAPI{}
	f := NewDishForm(api, "r1", DishFormCallbacks{})

	err := f.CreateCategory(context.Background(), "   ")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, api.createdCategories, "no network call on blank name")
}

func TestDishFormCreateSubCategoryNeedsCategory(t *testing.T) {
	f := NewDishForm(&fakeDishAPI{}, "r1", DishFormCallbacks{})

	var vErr *ValidationError
	require.ErrorAs(t, f.CreateSubCategory(context.Background(), "Grill"), &vErr)
}

func TestDishFormCreateSubCategoryAutoSelects(t *testing.T) {
	api := &fakeDishAPI{categories: []entity.Category{{CategoryID: "c1", CategoryName: "Mains"}}}
	f := NewDishForm(api, "r1", DishFormCallbacks{})
	require.NoError(t, f.LoadCategories(context.Background()))
	f.SelectCategory("c1")

	require.NoError(t, f.CreateSubCategory(context.Background(), "Grill"))
	assert.Equal(t, "sub-Grill", f.SelectedSubCategoryID)
}

func TestDishFormSubmitBuildsPayload(t *testing.T) {
	api := &fakeDishAPI{categories: []entity.Category{{CategoryID: "c1", CategoryName: "Mains"}}}
	refreshed, closed := false, false
	f := NewDishForm(api, "r1", DishFormCallbacks{
		RefreshList: func() { refreshed = true },
		Close:       func() { closed = true },
	})
	f.DishName = "Burger"
	f.SetDescription("Tasty")
	f.SelectCategory("c1")

	f.AddServingRow()
	f.UpdateServingField(0, "size", "Small")
	f.UpdateServingField(0, "price", "5.00")
	f.UpdateServingField(0, "nutritionFacts.calories", "540")
	f.AddServingRow()
	f.UpdateServingField(1, "size", "Large")
	f.UpdateServingField(1, "price", "8.50")

	require.NoError(t, f.Submit(context.Background(), ModeAdd))

	require.NotNil(t, api.lastPayload)
	p := api.lastPayload
	assert.Equal(t, "Burger", p.DishName)
	assert.Equal(t, "", p.OriginalCategoryID)
	assert.Equal(t, "", p.OriginalSubCategoryID)
	require.Len(t, p.ServingInfos, 2)
	assert.Equal(t, "Small", p.ServingInfos[0].Size)
	assert.Equal(t, "5.00", p.ServingInfos[0].Price)
	assert.Equal(t, "540", p.ServingInfos[0].NutritionFacts.Calories)
	assert.Equal(t, "Large", p.ServingInfos[1].Size)
	assert.Equal(t, "8.50", p.ServingInfos[1].Price)
	assert.True(t, refreshed)
	assert.True(t, closed)
	assert.Empty(t, f.Message)
}

func TestDishFormSubmitEditKeepsOriginalIDs(t *testing.T) {
	api := &fakeDishAPI{categories: []entity.Category{
		{CategoryID: "c1", CategoryName: "Mains"},
		{CategoryID: "c2", CategoryName: "Sides"},
	}}
	f := NewDishForm(api, "r1", DishFormCallbacks{})
	require.NoError(t, f.LoadCategories(context.Background()))

	// the dish being edited has a category but no subcategory
	f.LoadForEdit(&entity.Dish{ID: "d1", DishName: "Soup", CategoryID: "c1"})
	f.SelectCategory("c2")

	require.NoError(t, f.Submit(context.Background(), ModeEdit))

	assert.Equal(t, 1, api.editCalls)
	assert.Equal(t, "d1", api.lastDishID)
	assert.Equal(t, "c2", api.lastCategoryID)
	assert.Equal(t, "", api.lastSubCategoryID)
	// original ids travel in the payload as empty strings, never omitted
	assert.Equal(t, "c1", api.lastPayload.OriginalCategoryID)
	assert.Equal(t, "", api.lastPayload.OriginalSubCategoryID)
}

func TestDishFormSubmitLocalValidation(t *testing.T) {
	api := &fakeDishAPI{}
	f := NewDishForm(api, "r1", DishFormCallbacks{})

	var vErr *ValidationError
	require.ErrorAs(t, f.Submit(context.Background(), ModeAdd), &vErr)
	assert.Equal(t, "dishName", vErr.Field)

	f.DishName = "Burger"
	require.ErrorAs(t, f.Submit(context.Background(), ModeAdd), &vErr)
	assert.Equal(t, "category", vErr.Field)

	f.SelectedCategoryID = "c1"
	f.AddServingRow()
	f.UpdateServingField(0, "price", "5.999") // keystroke guard allows it
	require.ErrorAs(t, f.Submit(context.Background(), ModeAdd), &vErr)
	assert.Equal(t, "price", vErr.Field)

	assert.Equal(t, 0, api.createCalls, "validation failures never reach the network")
}

func TestDishFormSubmitErrorMessages(t *testing.T) {
	api := &fakeDishAPI{createDishErr: &client.APIError{StatusCode: 400, Message: "Dish already exists."}}
	f := NewDishForm(api, "r1", DishFormCallbacks{})
	f.DishName = "Burger"
	f.SelectedCategoryID = "c1"

	assert.Error(t, f.Submit(context.Background(), ModeAdd))
	assert.Equal(t, "Dish already exists.", f.Message, "server message surfaced verbatim")

	api.createDishErr = errors.New("boom")
	assert.Error(t, f.Submit(context.Background(), ModeAdd))
	assert.Equal(t, "Error adding dish.", f.Message)
}

func TestDishFormSubmitInFlightGuard(t *testing.T) {
	api := &fakeDishAPI{createDishBlock: make(chan struct{})}
	f := NewDishForm(api, "r1", DishFormCallbacks{})
	f.DishName = "Burger"
	f.SelectedCategoryID = "c1"

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), ModeAdd) }()

	// wait for the first submit to be in flight
	for !f.Submitting() {
		time.Sleep(time.Millisecond)
	}
	assert.ErrorIs(t, f.Submit(context.Background(), ModeAdd), ErrSubmitInFlight)

	close(api.createDishBlock)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.createCalls)
}
