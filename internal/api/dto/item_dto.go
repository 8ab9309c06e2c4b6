package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/shopping-service/internal/domain"
)

// NewItemRequest payload for adding an item to the catalog.
type NewItemRequest struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	ImageURL        *string         `json:"image_url"`
	DefaultUnitType domain.UnitType `json:"default_unit_type"`
}

var validUnitType = validation.By(func(value interface{}) error {
	u, _ := value.(domain.UnitType)
	if !u.Valid() {
		return errors.New("must be one of Count, Mass, Capacity")
	}
	return nil
})

// Validate checks the request fields.
func (r NewItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.ImageURL, validation.NilOrNotEmpty, is.URL),
		validation.Field(&r.DefaultUnitType, validation.Required, validUnitType),
	)
}

// ToDomain converts the request into insert fields.
func (r NewItemRequest) ToDomain() domain.NewItem {
	return domain.NewItem{
		Name:            r.Name,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		DefaultUnitType: r.DefaultUnitType,
	}
}
