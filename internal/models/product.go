package models

// Rating is managed by the upstream API; new products start at {0, 0}.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a product in the store catalog.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Rating      Rating  `json:"rating"`
}

// ProductCategories lists the choices the product form offers. The
// upstream API may return categories outside this set; these are only
// the options presented for new products.
var ProductCategories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}
