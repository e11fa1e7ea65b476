package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NutritionValue carries one tracked metric with its display unit.
// Value stays nil when the metric was never entered.
type NutritionValue struct {
	Value *decimal.Decimal `json:"value,omitempty"`
	Unit  string           `json:"unit,omitempty"`
}

type NutritionFacts struct {
	Calories NutritionValue `json:"calories"`
	Protein  NutritionValue `json:"protein"`
	Carbs    NutritionValue `json:"carbs"`
	TotalFat NutritionValue `json:"totalFat"`
}

type ServingInfo struct {
	Size           string         `json:"size"`
	Price          string         `json:"price,omitempty"`
	NutritionFacts NutritionFacts `json:"nutritionFacts"`
}

// ServingInfoEntry mirrors the API's read shape, which wraps every serving
// in a one-field object.
type ServingInfoEntry struct {
	ServingInfo ServingInfo `json:"servingInfo"`
}

// Dish belongs to one restaurant, one category and at most one subcategory.
// CategoryName/SubCategoryName are only populated on search results.
type Dish struct {
	ID              string             `gorm:"primaryKey;size:36" json:"_id"`
	RestaurantID    string             `gorm:"index" json:"-"`
	DishName        string             `json:"dishName"`
	Description     string             `json:"description,omitempty"`
	CategoryID      string             `gorm:"index" json:"categoryId"`
	SubCategoryID   string             `json:"subCategoryId,omitempty"`
	ServingInfos    []ServingInfoEntry `gorm:"serializer:json" json:"servingInfos"`
	CategoryName    string             `gorm:"-" json:"categoryName,omitempty"`
	SubCategoryName string             `gorm:"-" json:"subCategoryName,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ===== Write shapes =====
// Create/edit requests send servings flat, with every numeric field as the
// string the form captured. The server owns parsing and unit assignment.

type NutritionFactsPayload struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	TotalFat string `json:"totalFat"`
}

type ServingInfoPayload struct {
	Size           string                `json:"size"`
	Price          string                `json:"price"`
	NutritionFacts NutritionFactsPayload `json:"nutritionFacts"`
}

// DishPayload is the body of createDish/editDish. The original ids tell the
// server which category the dish is being moved from; both are "" (never
// omitted) when the dish had none.
type DishPayload struct {
	DishName              string               `json:"dishName"`
	Description           string               `json:"description"`
	OriginalCategoryID    string               `json:"originalCategoryId"`
	OriginalSubCategoryID string               `json:"originalSubCategoryId"`
	ServingInfos          []ServingInfoPayload `json:"servingInfos"`
}
