package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is both the wire shape of the catalog API and the dev server's
// storage model. JSON field names are fixed by the external contract.
type Restaurant struct {
	ID             string    `gorm:"primaryKey;size:36" json:"_id"`
	RestaurantName string    `json:"restaurantName"`
	Logo           string    `json:"logo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RestaurantSummary is the trimmed restaurant object returned alongside a
// dish listing.
type RestaurantSummary struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}
