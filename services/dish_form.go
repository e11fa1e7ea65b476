package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/shyamrajvs/hungrx-admin/client"
	"github.com/shyamrajvs/hungrx-admin/entity"
)

const descriptionLimit = 150

// priceInput matches what the price/nutrition inputs accept at the
// keystroke level: empty, or digits optionally followed by a decimal point
// and more digits. No sign, no exponent. A trailing "." is tolerated while
// typing; Submit re-validates the final value.
var priceInput = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?$`)

// DishAPI is the slice of the catalog client the dish form needs.
type DishAPI interface {
	AllDishes(ctx context.Context, restaurantID string) (*client.RestaurantDishes, error)
	CreateCategory(ctx context.Context, restaurantID, name string) error
	CreateSubCategory(ctx context.Context, restaurantID, categoryID, name string) error
	CreateDish(ctx context.Context, categoryID, subCategoryID string, payload *entity.DishPayload) (*entity.Dish, error)
	EditDish(ctx context.Context, dishID, newCategoryID, newSubCategoryID string, payload *entity.DishPayload) (*entity.Dish, error)
}

// NutritionRow holds the four tracked metrics as the strings the form shows.
type NutritionRow struct {
	Calories string
	Protein  string
	Carbs    string
	TotalFat string
}

// ServingRow is one editable serving entry, flat rather than in the server's
// nested read shape.
type ServingRow struct {
	Size           string
	Price          string
	NutritionFacts NutritionRow
}

func (r *ServingRow) field(path string) *string {
	switch path {
	case "size":
		return &r.Size
	case "price":
		return &r.Price
	case "nutritionFacts.calories":
		return &r.NutritionFacts.Calories
	case "nutritionFacts.protein":
		return &r.NutritionFacts.Protein
	case "nutritionFacts.carbs":
		return &r.NutritionFacts.Carbs
	case "nutritionFacts.totalFat":
		return &r.NutritionFacts.TotalFat
	default:
		return nil
	}
}

// DishFormCallbacks are invoked after a successful submit.
type DishFormCallbacks struct {
	RefreshList func()
	Close       func()
}

// DishForm is the state container behind the add/edit dish popup.
type DishForm struct {
	api          DishAPI
	restaurantID string
	callbacks    DishFormCallbacks

	DishName              string
	description           string
	SelectedCategoryID    string
	SelectedSubCategoryID string
	NewCategory           string
	NewSubCategory        string
	Categories            []entity.Category
	ServingRows           []ServingRow

	// captured at load time; the server uses them to know what the dish is
	// being moved from
	editDishID            string
	originalCategoryID    string
	originalSubCategoryID string

	// Message is the in-form error text; errors never propagate past the form.
	Message string

	submitting atomic.Bool
}

func NewDishForm(api DishAPI, restaurantID string, cb DishFormCallbacks) *DishForm {
	if cb.RefreshList == nil {
		cb.RefreshList = func() {}
	}
	if cb.Close == nil {
		cb.Close = func() {}
	}
	return &DishForm{api: api, restaurantID: restaurantID, callbacks: cb}
}

// LoadCategories fetches the restaurant's category tree.
func (f *DishForm) LoadCategories(ctx context.Context) error {
	res, err := f.api.AllDishes(ctx, f.restaurantID)
	if err != nil {
		f.Message = "Error fetching categories."
		return err
	}
	f.Categories = res.Categories
	return nil
}

// LoadForEdit populates the form from an existing dish, flattening the
// nested serving/nutrition read shape into editable rows. Any missing nested
// field becomes an empty string; partial data never fails.
func (f *DishForm) LoadForEdit(dish *entity.Dish) {
	if dish == nil {
		return
	}
	f.editDishID = dish.ID
	f.DishName = dish.DishName
	f.SetDescription(dish.Description)
	f.SelectedCategoryID = dish.CategoryID
	f.SelectedSubCategoryID = dish.SubCategoryID
	f.originalCategoryID = dish.CategoryID
	f.originalSubCategoryID = dish.SubCategoryID

	f.ServingRows = make([]ServingRow, 0, len(dish.ServingInfos))
	for _, entry := range dish.ServingInfos {
		info := entry.ServingInfo
		f.ServingRows = append(f.ServingRows, ServingRow{
			Size:  info.Size,
			Price: info.Price,
			NutritionFacts: NutritionRow{
				Calories: decimalString(info.NutritionFacts.Calories.Value),
				Protein:  decimalString(info.NutritionFacts.Protein.Value),
				Carbs:    decimalString(info.NutritionFacts.Carbs.Value),
				TotalFat: decimalString(info.NutritionFacts.TotalFat.Value),
			},
		})
	}
}

func decimalString(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// SetDescription clamps to 150 characters on every edit; overflow is
// silently truncated, not rejected.
func (f *DishForm) SetDescription(s string) {
	runes := []rune(s)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	f.description = string(runes)
}

func (f *DishForm) Description() string {
	return f.description
}

// SelectCategory switches the active category. The subcategory selection
// survives only when switching back to the category the dish was loaded
// with; otherwise it resets.
func (f *DishForm) SelectCategory(categoryID string) {
	f.SelectedCategoryID = categoryID
	if categoryID != "" && categoryID == f.originalCategoryID {
		f.SelectedSubCategoryID = f.originalSubCategoryID
	} else {
		f.SelectedSubCategoryID = ""
	}
}

// SubCategories returns the subcategories of the selected category, in
// server order.
func (f *DishForm) SubCategories() []entity.SubCategory {
	for _, cat := range f.Categories {
		if cat.CategoryID == f.SelectedCategoryID {
			return cat.SubCategories
		}
	}
	return nil
}

func (f *DishForm) AddServingRow() {
	f.ServingRows = append(f.ServingRows, ServingRow{})
}

// RemoveServingRow is a no-op for an out-of-range index.
func (f *DishForm) RemoveServingRow(index int) {
	if index < 0 || index >= len(f.ServingRows) {
		return
	}
	f.ServingRows = append(f.ServingRows[:index], f.ServingRows[index+1:]...)
}

// UpdateServingField writes one field of a serving row, addressed by a
// dot-separated path such as "nutritionFacts.calories". Price-like fields
// only accept non-negative plain decimals; a rejected value leaves the row
// unchanged. Unknown paths and out-of-range indexes are no-ops.
func (f *DishForm) UpdateServingField(index int, path, value string) {
	if index < 0 || index >= len(f.ServingRows) {
		return
	}
	target := f.ServingRows[index].field(path)
	if target == nil {
		return
	}
	if strings.Contains(path, "price") && value != "" && !priceInput.MatchString(value) {
		return
	}
	*target = value
}

// CreateCategory creates a category inline, refetches the tree (the refetch
// must observe the write, so the calls are sequenced) and auto-selects the
// new category by name.
func (f *DishForm) CreateCategory(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "newCategory", Message: "Category name is required."}
	}
	if err := f.api.CreateCategory(ctx, f.restaurantID, name); err != nil {
		f.Message = "Error adding category."
		return err
	}
	res, err := f.api.AllDishes(ctx, f.restaurantID)
	if err != nil {
		f.Message = "Error adding category."
		return err
	}
	f.Categories = res.Categories
	f.NewCategory = ""
	for _, cat := range f.Categories {
		if cat.CategoryName == name {
			f.SelectedCategoryID = cat.CategoryID
			f.SelectedSubCategoryID = ""
			break
		}
	}
	return nil
}

// CreateSubCategory is the same flow one level down and requires a selected
// parent category.
func (f *DishForm) CreateSubCategory(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "newSubCategory", Message: "Subcategory name is required."}
	}
	if f.SelectedCategoryID == "" {
		return &ValidationError{Field: "category", Message: "Select a category first."}
	}
	if err := f.api.CreateSubCategory(ctx, f.restaurantID, f.SelectedCategoryID, name); err != nil {
		f.Message = "Error adding subcategory."
		return err
	}
	res, err := f.api.AllDishes(ctx, f.restaurantID)
	if err != nil {
		f.Message = "Error adding subcategory."
		return err
	}
	f.Categories = res.Categories
	f.NewSubCategory = ""
	for _, sub := range f.SubCategories() {
		if sub.SubCategoryName == name {
			f.SelectedSubCategoryID = sub.SubCategoryID
			break
		}
	}
	return nil
}

// BuildPayload reshapes the form state into the server's write format. The
// original ids are always present, "" when the dish had none.
func (f *DishForm) BuildPayload() *entity.DishPayload {
	payload := &entity.DishPayload{
		DishName:              f.DishName,
		Description:           f.description,
		OriginalCategoryID:    f.originalCategoryID,
		OriginalSubCategoryID: f.originalSubCategoryID,
		ServingInfos:          make([]entity.ServingInfoPayload, 0, len(f.ServingRows)),
	}
	for _, row := range f.ServingRows {
		payload.ServingInfos = append(payload.ServingInfos, entity.ServingInfoPayload{
			Size:  row.Size,
			Price: row.Price,
			NutritionFacts: entity.NutritionFactsPayload{
				Calories: row.NutritionFacts.Calories,
				Protein:  row.NutritionFacts.Protein,
				Carbs:    row.NutritionFacts.Carbs,
				TotalFat: row.NutritionFacts.TotalFat,
			},
		})
	}
	return payload
}

// Submit validates locally, then dispatches create or edit. While a
// submission is in flight further submits are refused. On failure the
// server's message is surfaced verbatim when present; the error is also
// recorded in Message so callers can treat it as terminal.
func (f *DishForm) Submit(ctx context.Context, mode FormMode) error {
	if f.submitting.Load() {
		return ErrSubmitInFlight
	}
	if strings.TrimSpace(f.DishName) == "" {
		f.Message = "Dish name is required."
		return &ValidationError{Field: "dishName", Message: f.Message}
	}
	if f.SelectedCategoryID == "" {
		f.Message = "Category is required."
		return &ValidationError{Field: "category", Message: f.Message}
	}
	if err := f.validatePrices(); err != nil {
		f.Message = err.Error()
		return err
	}

	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.submitting.Store(false)
	f.Message = ""

	payload := f.BuildPayload()
	var err error
	if mode == ModeEdit {
		_, err = f.api.EditDish(ctx, f.editDishID, f.SelectedCategoryID, f.SelectedSubCategoryID, payload)
	} else {
		_, err = f.api.CreateDish(ctx, f.SelectedCategoryID, f.SelectedSubCategoryID, payload)
	}
	if err != nil {
		f.Message = f.submitErrorMessage(mode, err)
		return err
	}

	f.callbacks.RefreshList()
	f.callbacks.Close()
	return nil
}

func (f *DishForm) Submitting() bool {
	return f.submitting.Load()
}

// validatePrices re-checks every price as a decimal: non-negative, at most
// two fraction digits. The keystroke guard already blocks signs and double
// dots, so this mostly catches over-precise values and trailing dots typed
// right before submit.
func (f *DishForm) validatePrices() error {
	for i, row := range f.ServingRows {
		p := strings.TrimSuffix(row.Price, ".")
		if p == "" {
			continue
		}
		d, err := decimal.NewFromString(p)
		if err != nil || d.IsNegative() || d.Exponent() < -2 {
			return &ValidationError{Field: "price", Message: "Invalid price in serving " + strconv.Itoa(i+1) + "."}
		}
	}
	return nil
}

func (f *DishForm) submitErrorMessage(mode FormMode, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if mode == ModeEdit {
		return "Error updating dish."
	}
	return "Error adding dish."
}
