package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shyamrajvs/hungrx-admin/entity"
	"github.com/shyamrajvs/hungrx-admin/pkg/resp"
	"github.com/shyamrajvs/hungrx-admin/repository"
)

type CategoryController struct {
	Repo *repository.CatalogRepository
}

func NewCategoryController(repo *repository.CatalogRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

// PUT /api/restaurants/createCategory/:restaurantId (json: {categoryName})
func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	if _, err := ctl.Repo.FindRestaurant(restaurantID); err != nil {
		resp.NotFound(c, "Restaurant not found.")
		return
	}

	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CategoryName) == "" {
		resp.BadRequest(c, "Category name is required.")
		return
	}

	categories, err := ctl.Repo.ListCategories(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// duplicate names within one restaurant would make the panel's
	// select-by-name after create ambiguous
	for _, cat := range categories {
		if strings.EqualFold(cat.CategoryName, strings.TrimSpace(req.CategoryName)) {
			resp.BadRequest(c, "Category already exists.")
			return
		}
	}

	category := entity.Category{
		RestaurantID: restaurantID,
		CategoryName: req.CategoryName,
	}
	if err := ctl.Repo.CreateCategory(&category); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"category": category})
}

// PUT /api/restaurants/createSubcategory/:restaurantId/:categoryId (json: {subCategoryName})
func (ctl *CategoryController) CreateSubcategory(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	categoryID := c.Param("categoryId")

	category, err := ctl.Repo.FindCategory(categoryID)
	if err != nil || category.RestaurantID != restaurantID {
		resp.NotFound(c, "Category not found.")
		return
	}

	var req struct {
		SubCategoryName string `json:"subCategoryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.SubCategoryName) == "" {
		resp.BadRequest(c, "Subcategory name is required.")
		return
	}

	for _, sub := range category.SubCategories {
		if strings.EqualFold(sub.SubCategoryName, strings.TrimSpace(req.SubCategoryName)) {
			resp.BadRequest(c, "Subcategory already exists.")
			return
		}
	}

	category.SubCategories = append(category.SubCategories, entity.SubCategory{
		SubCategoryID:   uuid.NewString(),
		SubCategoryName: req.SubCategoryName,
	})
	if err := ctl.Repo.SaveCategory(category); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"category": category})
}
