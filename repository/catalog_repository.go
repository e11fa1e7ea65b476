package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

// CatalogRepository wraps every query the dev server's controllers need.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ===== Restaurants =====

// ListRestaurants returns one page (most recently touched first) plus the
// total match count. Search filters by case-insensitive name substring.
func (r *CatalogRepository) ListRestaurants(page, pageSize int, search string) ([]entity.Restaurant, int64, error) {
	if page < 1 {
		page = 1
	}
	q := r.db.Model(&entity.Restaurant{})
	if search != "" {
		q = q.Where("LOWER(restaurant_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []entity.Restaurant
	err := q.Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&restaurants).Error
	return restaurants, total, err
}

func (r *CatalogRepository) CountRestaurants() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Restaurant{}).Count(&count).Error
	return count, err
}

// FindRestaurantByNormalizedName backs the duplicate-name check.
func (r *CatalogRepository) FindRestaurantByNormalizedName(normalized string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.Where("LOWER(TRIM(restaurant_name)) = ?", normalized).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *CatalogRepository) FindRestaurant(id string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *CatalogRepository) CreateRestaurant(restaurant *entity.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *CatalogRepository) SaveRestaurant(restaurant *entity.Restaurant) error {
	return r.db.Save(restaurant).Error
}

// DeleteRestaurant removes the restaurant with its categories and dishes.
func (r *CatalogRepository) DeleteRestaurant(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.Dish{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Restaurant{}, "id = ?", id).Error
	})
}

// ===== Categories =====

func (r *CatalogRepository) ListCategories(restaurantID string) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CatalogRepository) FindCategory(id string) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.First(&category, "category_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) CreateCategory(category *entity.Category) error {
	return r.db.Create(category).Error
}

func (r *CatalogRepository) SaveCategory(category *entity.Category) error {
	return r.db.Save(category).Error
}

// ===== Dishes =====

func (r *CatalogRepository) ListDishes(restaurantID string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("updated_at DESC").
		Find(&dishes).Error
	return dishes, err
}

func (r *CatalogRepository) FindDish(id string) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *CatalogRepository) CreateDish(dish *entity.Dish) error {
	return r.db.Create(dish).Error
}

func (r *CatalogRepository) SaveDish(dish *entity.Dish) error {
	return r.db.Save(dish).Error
}

func (r *CatalogRepository) DeleteDish(id string) error {
	return r.db.Delete(&entity.Dish{}, "id = ?", id).Error
}

func (r *CatalogRepository) CountDishes() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Dish{}).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) CountDishesByRestaurant(restaurantID string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Dish{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) SearchDishes(restaurantID, query string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.db.Where("restaurant_id = ? AND LOWER(dish_name) LIKE ?", restaurantID, "%"+strings.ToLower(query)+"%").
		Order("updated_at DESC").
		Find(&dishes).Error
	return dishes, err
}
