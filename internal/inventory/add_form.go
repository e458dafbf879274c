package inventory

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/ordena/internal/models"
)

// Permission names a capability the add form needs from the device.
type Permission string

// PermissionCamera guards photo capture.
const PermissionCamera Permission = "camera"

// PermissionGate decides whether a capability may be used.
type PermissionGate interface {
	Granted(ctx context.Context, p Permission) bool
}

// PermissionFunc adapts a function to PermissionGate.
type PermissionFunc func(ctx context.Context, p Permission) bool

// Granted calls f(ctx, p).
func (f PermissionFunc) Granted(ctx context.Context, p Permission) bool {
	return f(ctx, p)
}

// AllowAll grants every permission.
var AllowAll = PermissionFunc(func(context.Context, Permission) bool { return true })

// RestaurantInput is what the user typed into the add-restaurant form.
type RestaurantInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRestaurant trims the input and checks it field by field, in form order.
// The first failing field is returned as a *FieldError.
func ValidateRestaurant(in RestaurantInput) (RestaurantInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Address = strings.TrimSpace(in.Address)

	err := validate.Struct(in)
	if err == nil {
		return in, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return in, fmt.Errorf("failed to validate restaurant: %w", err)
	}
	first := verrs[0]
	return in, &FieldError{Field: first.Field(), Message: fieldMessage(first)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// AddRestaurantForm collects a new restaurant. It never writes to storage:
// the result is handed back to the restaurant list, which persists it.
type AddRestaurantForm struct {
	Screen

	photos    PhotoSaver
	gate      PermissionGate
	photoPath string
}

// NewAddRestaurantForm creates an active form. photos may be nil when photo capture is unavailable.
func NewAddRestaurantForm(photos PhotoSaver, gate PermissionGate) *AddRestaurantForm {
	if gate == nil {
		gate = AllowAll
	}
	f := &AddRestaurantForm{photos: photos, gate: gate}
	f.Activate()
	return f
}

// AttachPhoto stores photo bytes and remembers the path for the result.
// A later call replaces the earlier photo.
func (f *AddRestaurantForm) AttachPhoto(ctx context.Context, data []byte) (string, error) {
	if err := f.requireActive(); err != nil {
		return "", err
	}
	if f.photos == nil || !f.gate.Granted(ctx, PermissionCamera) {
		return "", fmt.Errorf("%w: %s", ErrPermissionDenied, PermissionCamera)
	}

	path, err := f.photos.Save(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to save photo: %w", err)
	}
	f.photoPath = path
	return path, nil
}

// PhotoPath returns the attached photo, if any.
func (f *AddRestaurantForm) PhotoPath() string {
	return f.photoPath
}

// Submit validates the input and finishes the form with the new restaurant.
// On a validation error the form stays active and unchanged.
func (f *AddRestaurantForm) Submit(in RestaurantInput) (models.Restaurant, error) {
	if err := f.requireActive(); err != nil {
		return models.Restaurant{}, err
	}
	in, err := ValidateRestaurant(in)
	if err != nil {
		return models.Restaurant{}, err
	}

	r := models.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		ImageResID:  models.DefaultImageResID,
		ImagePath:   f.photoPath,
	}
	if err := f.Finish(); err != nil {
		return models.Restaurant{}, err
	}
	return r, nil
}
