package configs

import (
	"github.com/shopspring/decimal"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

// SeedDemo puts one sample restaurant with a dish into an empty database so
// the panel has something to show on first run.
func SeedDemo() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurant := entity.Restaurant{RestaurantName: "Demo Diner"}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	category := entity.Category{
		RestaurantID: restaurant.ID,
		CategoryName: "Burgers",
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	calories := decimal.NewFromInt(540)
	protein := decimal.NewFromInt(25)
	carbs := decimal.NewFromInt(40)
	fat := decimal.NewFromInt(31)
	dish := entity.Dish{
		RestaurantID: restaurant.ID,
		DishName:     "Classic Cheeseburger",
		Description:  "Beef patty, cheddar, house sauce.",
		CategoryID:   category.CategoryID,
		ServingInfos: []entity.ServingInfoEntry{
			{ServingInfo: entity.ServingInfo{
				Size:  "Regular",
				Price: "8.50",
				NutritionFacts: entity.NutritionFacts{
					Calories: entity.NutritionValue{Value: &calories, Unit: "cal"},
					Protein:  entity.NutritionValue{Value: &protein, Unit: "g"},
					Carbs:    entity.NutritionValue{Value: &carbs, Unit: "g"},
					TotalFat: entity.NutritionValue{Value: &fat, Unit: "g"},
				},
			}},
		},
	}
	return db.Create(&dish).Error
}
