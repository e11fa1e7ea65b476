package services

import (
	"context"
	"io"
	"strings"

	"github.com/shyamrajvs/hungrx-admin/client"
	"github.com/shyamrajvs/hungrx-admin/entity"
)

// allowedLogoTypes gates uploads client-side, before any request is made.
var allowedLogoTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

// RestaurantAPI is the slice of the catalog client the restaurant forms need.
type RestaurantAPI interface {
	CreateRestaurant(ctx context.Context, name string, logo *client.Upload) (*entity.Restaurant, error)
	EditRestaurant(ctx context.Context, id, name string, logo *client.Upload) (*entity.Restaurant, error)
}

// RestaurantFormCallbacks fire after a successful save.
type RestaurantFormCallbacks struct {
	Saved func(r *entity.Restaurant)
	Close func()
}

// RestaurantForm backs the add/edit restaurant popup.
type RestaurantForm struct {
	api       RestaurantAPI
	callbacks RestaurantFormCallbacks

	Name         string
	restaurantID string
	logo         *client.Upload

	// Error is the inline form message; nothing propagates past the form.
	Error string

	submitting bool
}

func NewRestaurantForm(api RestaurantAPI, cb RestaurantFormCallbacks) *RestaurantForm {
	if cb.Saved == nil {
		cb.Saved = func(*entity.Restaurant) {}
	}
	if cb.Close == nil {
		cb.Close = func() {}
	}
	return &RestaurantForm{api: api, callbacks: cb}
}

func (f *RestaurantForm) LoadForEdit(r *entity.Restaurant) {
	if r == nil {
		return
	}
	f.restaurantID = r.ID
	f.Name = r.RestaurantName
}

// AttachLogo validates the file type before staging it for upload. A
// rejected file clears any previously staged logo.
func (f *RestaurantForm) AttachLogo(filename, contentType string, r io.Reader) error {
	if !allowedLogoTypes[contentType] {
		f.logo = nil
		f.Error = "Only .png, .jpg, .jpeg, and .webp files are allowed."
		return &ValidationError{Field: "logo", Message: f.Error}
	}
	f.Error = ""
	f.logo = &client.Upload{Filename: filename, ContentType: contentType, Reader: r}
	return nil
}

func (f *RestaurantForm) ClearLogo() {
	f.logo = nil
}

// NormalizeName is used for duplicate detection only; the displayed name
// keeps its original casing.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Submit validates the name, then dispatches create or edit. The stored
// name is the entered one trimmed of surrounding whitespace.
func (f *RestaurantForm) Submit(ctx context.Context, mode FormMode) error {
	if f.submitting {
		return ErrSubmitInFlight
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		f.Error = "Restaurant name is required."
		return &ValidationError{Field: "restaurantName", Message: f.Error}
	}
	if mode == ModeEdit && f.restaurantID == "" {
		f.Error = "Restaurant ID is required for editing."
		return &ValidationError{Field: "id", Message: f.Error}
	}

	f.submitting = true
	defer func() { f.submitting = false }()
	f.Error = ""

	var (
		saved *entity.Restaurant
		err   error
	)
	if mode == ModeEdit {
		saved, err = f.api.EditRestaurant(ctx, f.restaurantID, name, f.logo)
	} else {
		saved, err = f.api.CreateRestaurant(ctx, name, f.logo)
	}
	if err != nil {
		f.Error = client.UserMessage(err)
		return err
	}

	f.callbacks.Saved(saved)
	f.callbacks.Close()
	return nil
}

// DeleteRestaurantAPI covers the delete gate.
type DeleteRestaurantAPI interface {
	DeleteRestaurant(ctx context.Context, id, deleteID string) (string, error)
}

// RestaurantDeleteForm backs the delete popup. The delete ID is a
// client-supplied confirmation token compared by the server; it is a UX
// gate, not access control.
type RestaurantDeleteForm struct {
	api        DeleteRestaurantAPI
	Restaurant *entity.Restaurant

	DeleteInput string
	Error       string

	Deleted func(restaurantID string)
	Close   func()
}

func NewRestaurantDeleteForm(api DeleteRestaurantAPI, r *entity.Restaurant) *RestaurantDeleteForm {
	return &RestaurantDeleteForm{
		api:        api,
		Restaurant: r,
		Deleted:    func(string) {},
		Close:      func() {},
	}
}

func (f *RestaurantDeleteForm) Submit(ctx context.Context) error {
	if f.DeleteInput == "" {
		f.Error = "Delete ID is required."
		return &ValidationError{Field: "deleteId", Message: f.Error}
	}
	f.Error = ""

	id, err := f.api.DeleteRestaurant(ctx, f.Restaurant.ID, f.DeleteInput)
	if err != nil {
		f.Error = client.UserMessage(err)
		return err
	}
	f.Deleted(id)
	f.Close()
	return nil
}
