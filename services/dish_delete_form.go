package services

import (
	"context"

	"github.com/shyamrajvs/hungrx-admin/client"
	"github.com/shyamrajvs/hungrx-admin/entity"
)

// DeleteDishAPI covers the dish delete gate.
type DeleteDishAPI interface {
	DeleteDish(ctx context.Context, restaurantID, dishID, deleteID string) error
}

// DishDeleteForm backs the delete-dish popup; same delete-ID gate as the
// restaurant flow.
type DishDeleteForm struct {
	api          DeleteDishAPI
	restaurantID string
	Dish         *entity.Dish

	DeleteInput string
	Error       string

	Deleted func(dishID string)
	Close   func()
}

func NewDishDeleteForm(api DeleteDishAPI, restaurantID string, dish *entity.Dish) *DishDeleteForm {
	return &DishDeleteForm{
		api:          api,
		restaurantID: restaurantID,
		Dish:         dish,
		Deleted:      func(string) {},
		Close:        func() {},
	}
}

func (f *DishDeleteForm) Submit(ctx context.Context) error {
	if f.DeleteInput == "" {
		f.Error = "Delete ID is required."
		return &ValidationError{Field: "deleteId", Message: f.Error}
	}
	f.Error = ""

	if err := f.api.DeleteDish(ctx, f.restaurantID, f.Dish.ID, f.DeleteInput); err != nil {
		f.Error = client.UserMessage(err)
		return err
	}
	f.Deleted(f.Dish.ID)
	f.Close()
	return nil
}
