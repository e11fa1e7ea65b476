package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubCategory struct {
	SubCategoryID   string `json:"subCategoryId"`
	SubCategoryName string `json:"subCategoryName"`
}

// Category is a two-level classification scoped to one restaurant.
// Subcategories keep server order; they are never re-ordered locally.
type Category struct {
	CategoryID    string        `gorm:"primaryKey;size:36" json:"categoryId"`
	RestaurantID  string        `gorm:"index" json:"-"`
	CategoryName  string        `json:"categoryName"`
	SubCategories []SubCategory `gorm:"serializer:json" json:"subCategories"`
	CreatedAt     time.Time     `json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.NewString()
	}
	return nil
}
