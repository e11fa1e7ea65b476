package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shyamrajvs/hungrx-admin/entity"
)

// Config is passed in explicitly; the client never reads the environment.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

// Catalog is a typed wrapper around the remote catalog API. It shapes
// requests and responses and maps errors; it holds no list state.
type Catalog struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

func New(cfg Config) *Catalog {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Catalog{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		log:     logger,
	}
}

// Upload is a logo file staged for a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ===== Response envelopes =====

type RestaurantPage struct {
	Restaurants      []entity.Restaurant `json:"restaurants"`
	TotalPages       int                 `json:"totalPages"`
	TotalRestaurants int                 `json:"totalRestaurants"`
}

type RestaurantDishes struct {
	Dishes     []entity.Dish            `json:"dishes"`
	Categories []entity.Category        `json:"categories"`
	Restaurant entity.RestaurantSummary `json:"restaurant"`
}

// ===== Restaurants =====

// GET /api/restaurants/allRestaurants?page=&search=
func (c *Catalog) AllRestaurants(ctx context.Context, page int, search string) (*RestaurantPage, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("search", search)
	var out RestaurantPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants/allRestaurants?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /api/restaurants/totalRestaurants
func (c *Catalog) TotalRestaurants(ctx context.Context) (int, error) {
	var out struct {
		TotalRestaurants int `json:"totalRestaurants"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants/totalRestaurants", nil, &out); err != nil {
		return 0, err
	}
	return out.TotalRestaurants, nil
}

// GET /api/restaurants/totalDishes
func (c *Catalog) TotalDishes(ctx context.Context) (int, error) {
	var out struct {
		TotalDishes int `json:"totalDishes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants/totalDishes", nil, &out); err != nil {
		return 0, err
	}
	return out.TotalDishes, nil
}

// POST /api/restaurants/createRestaurant (multipart)
func (c *Catalog) CreateRestaurant(ctx context.Context, name string, logo *Upload) (*entity.Restaurant, error) {
	fields := map[string]string{"restaurantName": name}
	var out struct {
		Restaurant entity.Restaurant `json:"restaurant"`
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/api/restaurants/createRestaurant", fields, logo, &out); err != nil {
		return nil, err
	}
	return &out.Restaurant, nil
}

// PUT /api/restaurants/editRestaurant/{id} (multipart)
func (c *Catalog) EditRestaurant(ctx context.Context, id, name string, logo *Upload) (*entity.Restaurant, error) {
	fields := map[string]string{"id": id, "restaurantName": name}
	var out struct {
		Restaurant entity.Restaurant `json:"restaurant"`
	}
	if err := c.doMultipart(ctx, http.MethodPut, "/api/restaurants/editRestaurant/"+url.PathEscape(id), fields, logo, &out); err != nil {
		return nil, err
	}
	return &out.Restaurant, nil
}

// DELETE /api/restaurants/deleteRestaurant/{id}
func (c *Catalog) DeleteRestaurant(ctx context.Context, id, deleteID string) (string, error) {
	body := map[string]string{"deleteId": deleteID}
	var out struct {
		RestaurantID string `json:"restaurantId"`
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/api/restaurants/deleteRestaurant/"+url.PathEscape(id), body, &out); err != nil {
		return "", err
	}
	return out.RestaurantID, nil
}

// ===== Dishes =====

// GET /api/restaurants/allDishes/{restaurantId}
func (c *Catalog) AllDishes(ctx context.Context, restaurantID string) (*RestaurantDishes, error) {
	var out RestaurantDishes
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants/allDishes/"+url.PathEscape(restaurantID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /api/restaurants/dishCount/{restaurantId}
func (c *Catalog) DishCount(ctx context.Context, restaurantID string) (int, error) {
	var out struct {
		DishCount int `json:"dishCount"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants/dishCount/"+url.PathEscape(restaurantID), nil, &out); err != nil {
		return 0, err
	}
	return out.DishCount, nil
}

// GET /api/restaurants/searchDish/{restaurantId}?query=
func (c *Catalog) SearchDish(ctx context.Context, restaurantID, query string) ([]entity.Dish, error) {
	q := url.Values{}
	q.Set("query", query)
	var out struct {
		Results []entity.Dish `json:"results"`
	}
	path := "/api/restaurants/searchDish/" + url.PathEscape(restaurantID) + "?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// PUT /api/restaurants/createCategory/{restaurantId}
func (c *Catalog) CreateCategory(ctx context.Context, restaurantID, name string) error {
	body := map[string]string{"categoryName": name}
	return c.doJSON(ctx, http.MethodPut, "/api/restaurants/createCategory/"+url.PathEscape(restaurantID), body, nil)
}

// PUT /api/restaurants/createSubcategory/{restaurantId}/{categoryId}
func (c *Catalog) CreateSubCategory(ctx context.Context, restaurantID, categoryID, name string) error {
	body := map[string]string{"subCategoryName": name}
	path := "/api/restaurants/createSubcategory/" + url.PathEscape(restaurantID) + "/" + url.PathEscape(categoryID)
	return c.doJSON(ctx, http.MethodPut, path, body, nil)
}

// PUT /api/restaurants/createDish/{categoryId}/{subCategoryId?}
// The subcategory segment stays in the path even when empty.
func (c *Catalog) CreateDish(ctx context.Context, categoryID, subCategoryID string, payload *entity.DishPayload) (*entity.Dish, error) {
	path := "/api/restaurants/createDish/" + url.PathEscape(categoryID) + "/" + url.PathEscape(subCategoryID)
	var out struct {
		Dish entity.Dish `json:"dish"`
	}
	if err := c.doJSON(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return &out.Dish, nil
}

// PUT /api/restaurants/editDish/{dishId}/{newCategoryId}/{newSubCategoryId?}
func (c *Catalog) EditDish(ctx context.Context, dishID, newCategoryID, newSubCategoryID string, payload *entity.DishPayload) (*entity.Dish, error) {
	path := "/api/restaurants/editDish/" + url.PathEscape(dishID) + "/" +
		url.PathEscape(newCategoryID) + "/" + url.PathEscape(newSubCategoryID)
	var out struct {
		Dish entity.Dish `json:"dish"`
	}
	if err := c.doJSON(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return &out.Dish, nil
}

// DELETE /api/restaurants/deleteDish/{restaurantId}/{dishId}
func (c *Catalog) DeleteDish(ctx context.Context, restaurantID, dishID, deleteID string) error {
	body := map[string]string{"deleteId": deleteID}
	path := "/api/restaurants/deleteDish/" + url.PathEscape(restaurantID) + "/" + url.PathEscape(dishID)
	return c.doJSON(ctx, http.MethodDelete, path, body, nil)
}

// ===== Transport =====

func (c *Catalog) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Catalog) doMultipart(ctx context.Context, method, path string, fields map[string]string, logo *Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if logo != nil {
		part, err := w.CreateFormFile("logo", logo.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, logo.Reader); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Catalog) send(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", req.Method, "url", req.URL.String(), "err", err)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&payload)
		if payload.Message != "" {
			return &APIError{StatusCode: res.StatusCode, Message: payload.Message}
		}
		if res.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return &APIError{StatusCode: res.StatusCode}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
