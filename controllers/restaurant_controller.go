package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shyamrajvs/hungrx-admin/configs"
	"github.com/shyamrajvs/hungrx-admin/entity"
	"github.com/shyamrajvs/hungrx-admin/pkg/resp"
	"github.com/shyamrajvs/hungrx-admin/repository"
)

const restaurantPageSize = 20

var allowedLogoExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type RestaurantController struct {
	Repo *repository.CatalogRepository
	Cfg  *configs.Config
}

func NewRestaurantController(repo *repository.CatalogRepository, cfg *configs.Config) *RestaurantController {
	return &RestaurantController{Repo: repo, Cfg: cfg}
}

// GET /api/restaurants/allRestaurants?page=&search=
func (ctl *RestaurantController) AllRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	search := c.Query("search")

	restaurants, total, err := ctl.Repo.ListRestaurants(page, restaurantPageSize, search)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	totalPages := int((total + restaurantPageSize - 1) / restaurantPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	resp.OK(c, gin.H{
		"restaurants":      restaurants,
		"totalPages":       totalPages,
		"totalRestaurants": total,
	})
}

// GET /api/restaurants/totalRestaurants
func (ctl *RestaurantController) TotalRestaurants(c *gin.Context) {
	total, err := ctl.Repo.CountRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"totalRestaurants": total})
}

// GET /api/restaurants/totalDishes
func (ctl *RestaurantController) TotalDishes(c *gin.Context) {
	total, err := ctl.Repo.CountDishes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"totalDishes": total})
}

// POST /api/restaurants/createRestaurant (multipart: restaurantName, logo?)
func (ctl *RestaurantController) CreateRestaurant(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("restaurantName"))
	if name == "" {
		resp.BadRequest(c, "Restaurant name is required.")
		return
	}
	if ctl.nameTaken(name, "") {
		resp.BadRequest(c, "Restaurant already exists.")
		return
	}

	logoPath, err := ctl.saveLogo(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restaurant := entity.Restaurant{RestaurantName: name, Logo: logoPath}
	if err := ctl.Repo.CreateRestaurant(&restaurant); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurant": restaurant})
}

// PUT /api/restaurants/editRestaurant/:id (multipart: id, restaurantName, logo?)
func (ctl *RestaurantController) EditRestaurant(c *gin.Context) {
	id := c.Param("id")
	restaurant, err := ctl.Repo.FindRestaurant(id)
	if err != nil {
		resp.NotFound(c, "Restaurant not found.")
		return
	}

	name := strings.TrimSpace(c.PostForm("restaurantName"))
	if name == "" {
		resp.BadRequest(c, "Restaurant name is required.")
		return
	}
	if ctl.nameTaken(name, id) {
		resp.BadRequest(c, "Restaurant already exists.")
		return
	}

	logoPath, err := ctl.saveLogo(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restaurant.RestaurantName = name
	if logoPath != "" {
		restaurant.Logo = logoPath
	}
	if err := ctl.Repo.SaveRestaurant(restaurant); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": restaurant})
}

// DELETE /api/restaurants/deleteRestaurant/:id (json: {deleteId})
func (ctl *RestaurantController) DeleteRestaurant(c *gin.Context) {
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

	id := c.Param("id")
	if _, err := ctl.Repo.FindRestaurant(id); err != nil {
		resp.NotFound(c, "Restaurant not found.")
		return
	}
	if err := ctl.Repo.DeleteRestaurant(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurantId": id})
}

// nameTaken compares trimmed+lowercased names; excludeID skips the
// restaurant being edited.
func (ctl *RestaurantController) nameTaken(name, excludeID string) bool {
	existing, err := ctl.Repo.FindRestaurantByNormalizedName(strings.ToLower(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		return false
	}
	return existing.ID != excludeID
}

func (ctl *RestaurantController) saveLogo(c *gin.Context) (string, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return "", nil // logo is optional
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExt[ext] {
		return "", errors.New("Only .png, .jpg, .jpeg, and .webp files are allowed.")
	}
	filename := fmt.Sprintf("logo_%d%s", time.Now().UnixNano(), ext)
	savePath := filepath.Join(ctl.Cfg.UploadDir, "logos", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", errors.New("cannot save logo")
	}
	return "/logos/" + filename, nil
}
