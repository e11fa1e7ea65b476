package controllers

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shyamrajvs/hungrx-admin/configs"
	"github.com/shyamrajvs/hungrx-admin/entity"
	"github.com/shyamrajvs/hungrx-admin/pkg/resp"
	"github.com/shyamrajvs/hungrx-admin/repository"
)

const dishDescriptionLimit = 150

type DishController struct {
	Repo *repository.CatalogRepository
	Cfg  *configs.Config
}

func NewDishController(repo *repository.CatalogRepository, cfg *configs.Config) *DishController {
	return &DishController{Repo: repo, Cfg: cfg}
}

// GET /api/restaurants/allDishes/:restaurantId
func (ctl *DishController) AllDishes(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	restaurant, err := ctl.Repo.FindRestaurant(restaurantID)
	if err != nil {
		resp.NotFound(c, "Restaurant not found.")
		return
	}

	dishes, err := ctl.Repo.ListDishes(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	categories, err := ctl.Repo.ListCategories(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"dishes":     dishes,
		"categories": categories,
		"restaurant": entity.RestaurantSummary{ID: restaurant.ID, Name: restaurant.RestaurantName},
	})
}

// GET /api/restaurants/dishCount/:restaurantId
func (ctl *DishController) DishCount(c *gin.Context) {
	count, err := ctl.Repo.CountDishesByRestaurant(c.Param("restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"dishCount": count})
}

// GET /api/restaurants/searchDish/:restaurantId?query=
func (ctl *DishController) SearchDish(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	dishes, err := ctl.Repo.SearchDishes(restaurantID, c.Query("query"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// search results carry their category names for flat rendering
	categories, err := ctl.Repo.ListCategories(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	catNames := make(map[string]string, len(categories))
	subNames := make(map[string]string)
	for _, cat := range categories {
		catNames[cat.CategoryID] = cat.CategoryName
		for _, sub := range cat.SubCategories {
			subNames[sub.SubCategoryID] = sub.SubCategoryName
		}
	}
	for i := range dishes {
		dishes[i].CategoryName = catNames[dishes[i].CategoryID]
		dishes[i].SubCategoryName = subNames[dishes[i].SubCategoryID]
	}

	resp.OK(c, gin.H{"results": dishes})
}

// PUT /api/restaurants/createDish/:categoryId/*subCategoryId
func (ctl *DishController) CreateDish(c *gin.Context) {
	category, err := ctl.Repo.FindCategory(c.Param("categoryId"))
	if err != nil {
		resp.NotFound(c, "Category not found.")
		return
	}
	subCategoryID := strings.TrimPrefix(c.Param("subCategoryId"), "/")
	if subCategoryID != "" && !hasSubCategory(category, subCategoryID) {
		resp.NotFound(c, "Subcategory not found.")
		return
	}

	var payload entity.DishPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, "Invalid dish payload.")
		return
	}
	if msg := validateDishPayload(&payload); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	dish := entity.Dish{
		RestaurantID:  category.RestaurantID,
		DishName:      payload.DishName,
		Description:   payload.Description,
		CategoryID:    category.CategoryID,
		SubCategoryID: subCategoryID,
		ServingInfos:  buildServingInfos(payload.ServingInfos),
	}
	if err := ctl.Repo.CreateDish(&dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"dish": dish})
}

// PUT /api/restaurants/editDish/:dishId/:newCategoryId/*newSubCategoryId
// The payload's original ids say what the dish moves from; the path says
// where it moves to.
func (ctl *DishController) EditDish(c *gin.Context) {
	dish, err := ctl.Repo.FindDish(c.Param("dishId"))
	if err != nil {
		resp.NotFound(c, "Dish not found.")
		return
	}
	category, err := ctl.Repo.FindCategory(c.Param("newCategoryId"))
	if err != nil {
		resp.NotFound(c, "Category not found.")
		return
	}
	subCategoryID := strings.TrimPrefix(c.Param("newSubCategoryId"), "/")
	if subCategoryID != "" && !hasSubCategory(category, subCategoryID) {
		resp.NotFound(c, "Subcategory not found.")
		return
	}

	var payload entity.DishPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, "Invalid dish payload.")
		return
	}
	if msg := validateDishPayload(&payload); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	dish.DishName = payload.DishName
	dish.Description = payload.Description
	dish.CategoryID = category.CategoryID
	dish.SubCategoryID = subCategoryID
	dish.RestaurantID = category.RestaurantID
	dish.ServingInfos = buildServingInfos(payload.ServingInfos)
	if err := ctl.Repo.SaveDish(dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"dish": dish})
}

// DELETE /api/restaurants/deleteDish/:restaurantId/:dishId (json: {deleteId})
func (ctl *DishController) DeleteDish(c *gin.Context) {
	var req struct {
		DeleteID string `json:"deleteId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Delete ID is required.")
		return
	}
	if req.DeleteID != ctl.Cfg.AdminDeleteID {
		resp.Forbidden(c, "Invalid delete ID.")
		return
	}

	dish, err := ctl.Repo.FindDish(c.Param("dishId"))
	if err != nil || dish.RestaurantID != c.Param("restaurantId") {
		resp.NotFound(c, "Dish not found.")
		return
	}
	if err := ctl.Repo.DeleteDish(dish.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"dishId": dish.ID})
}

func hasSubCategory(category *entity.Category, subCategoryID string) bool {
	for _, sub := range category.SubCategories {
		if sub.SubCategoryID == subCategoryID {
			return true
		}
	}
	return false
}

func validateDishPayload(p *entity.DishPayload) string {
	if strings.TrimSpace(p.DishName) == "" {
		return "Dish name is required."
	}
	if utf8.RuneCountInString(p.Description) > dishDescriptionLimit {
		return "Description exceeds 150 characters."
	}
	for _, s := range p.ServingInfos {
		if s.Price == "" {
			continue
		}
		d, err := decimal.NewFromString(s.Price)
		if err != nil || d.IsNegative() {
			return "Invalid price."
		}
	}
	return ""
}

// buildServingInfos parses the flat write shape into the nested read shape,
// attaching display units. Unparseable or empty metrics stay nil.
func buildServingInfos(payload []entity.ServingInfoPayload) []entity.ServingInfoEntry {
	entries := make([]entity.ServingInfoEntry, 0, len(payload))
	for _, s := range payload {
		entries = append(entries, entity.ServingInfoEntry{
			ServingInfo: entity.ServingInfo{
				Size:  s.Size,
				Price: s.Price,
				NutritionFacts: entity.NutritionFacts{
					Calories: nutritionValue(s.NutritionFacts.Calories, "cal"),
					Protein:  nutritionValue(s.NutritionFacts.Protein, "g"),
					Carbs:    nutritionValue(s.NutritionFacts.Carbs, "g"),
					TotalFat: nutritionValue(s.NutritionFacts.TotalFat, "g"),
				},
			},
		})
	}
	return entries
}

func nutritionValue(raw, unit string) entity.NutritionValue {
	if raw == "" {
		return entity.NutritionValue{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return entity.NutritionValue{}
	}
	return entity.NutritionValue{Value: &d, Unit: unit}
}
