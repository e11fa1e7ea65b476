package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shyamrajvs/hungrx-admin/configs"
	"github.com/shyamrajvs/hungrx-admin/controllers"
	"github.com/shyamrajvs/hungrx-admin/middlewares"
	"github.com/shyamrajvs/hungrx-admin/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	repo := repository.NewCatalogRepository(db)

	// Controllers
	restCtrl := controllers.NewRestaurantController(repo, cfg)
	catCtrl := controllers.NewCategoryController(repo)
	dishCtrl := controllers.NewDishController(repo, cfg)

	api := r.Group("/api/restaurants")
	{
		// Restaurants
		api.GET("/allRestaurants", restCtrl.AllRestaurants)
		api.GET("/totalRestaurants", restCtrl.TotalRestaurants)
		api.GET("/totalDishes", restCtrl.TotalDishes)
		api.POST("/createRestaurant", restCtrl.CreateRestaurant)
		api.PUT("/editRestaurant/:id", restCtrl.EditRestaurant)
		api.DELETE("/deleteRestaurant/:id", restCtrl.DeleteRestaurant)

		// Categories
		api.PUT("/createCategory/:restaurantId", catCtrl.CreateCategory)
		api.PUT("/createSubcategory/:restaurantId/:categoryId", catCtrl.CreateSubcategory)

		// Dishes
		api.GET("/allDishes/:restaurantId", dishCtrl.AllDishes)
		api.GET("/dishCount/:restaurantId", dishCtrl.DishCount)
		api.GET("/searchDish/:restaurantId", dishCtrl.SearchDish)
		// the subcategory segment may be empty, hence the wildcard
		api.PUT("/createDish/:categoryId/*subCategoryId", dishCtrl.CreateDish)
		api.PUT("/editDish/:dishId/:newCategoryId/*newSubCategoryId", dishCtrl.EditDish)
		api.DELETE("/deleteDish/:restaurantId/:dishId", dishCtrl.DeleteDish)
	}
}
