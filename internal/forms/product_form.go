package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"storeadmin/internal/models"
)

// ProductForm carries the fields of the add/edit product forms. Price
// arrives as text and is converted to a number on Build, so "19.99" is
// stored as 19.99.
type ProductForm struct {
	Title       string `json:"title" validate:"required"`
	Price       string `json:"price" validate:"required,numeric"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required,url"`
	Category    string `json:"category" validate:"required"`
}

// Validate checks the product rules. Positivity of the price cannot be
// expressed as a tag on a string field, so it is checked after parsing.
func (f *ProductForm) Validate(v *validator.Validate) map[string]string {
	errs := collect(v.Struct(f))
	if _, ok := errs["price"]; !ok && f.Price != "" {
		if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs["price"] = "Price must be positive"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Build produces the request payload with the price parsed and the
// rating defaulted for new products. Call only after validation passed.
func (f *ProductForm) Build() models.Product {
	price, _ := strconv.ParseFloat(f.Price, 64)
	return models.Product{
		Title:       f.Title,
		Price:       price,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
		Rating:      models.Rating{Rate: 0, Count: 0},
	}
}
