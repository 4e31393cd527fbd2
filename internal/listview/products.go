package listview

import (
	"sort"

	"storeadmin/internal/models"
)

// Product sort fields.
const (
	ProductSortID       = "id"
	ProductSortTitle    = "title"
	ProductSortPrice    = "price"
	ProductSortCategory = "category"
	ProductSortRating   = "rating"
)

// ProductQuery is the view state of the products list page.
type ProductQuery struct {
	Search string
	SortBy string
	Order  Order
	Page   int
}

// ProductPage is one derived page of the products list.
type ProductPage struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// Apply runs the filter/sort/paginate pipeline over the given collection.
func (q ProductQuery) Apply(products []models.Product) ProductPage {
	if q.SortBy == "" {
		q.SortBy = ProductSortID
	}
	if q.Order == "" {
		q.Order = Asc
	}
	if q.Page < 1 {
		q.Page = 1
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if containsFold(q.Search, p.Title, p.Category) {
			filtered = append(filtered, p)
		}
	}

	coll := newCollator()
	cmp := func(a, b models.Product) int {
		switch q.SortBy {
		case ProductSortTitle:
			return coll.CompareString(a.Title, b.Title)
		case ProductSortCategory:
			return coll.CompareString(a.Category, b.Category)
		case ProductSortPrice:
			return compareFloat(a.Price, b.Price)
		case ProductSortRating:
			return compareFloat(a.Rating.Rate, b.Rating.Rate)
		default:
			return a.ID - b.ID
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		c := cmp(filtered[i], filtered[j])
		if q.Order == Desc {
			return c > 0
		}
		return c < 0
	})

	start, end := pageBounds(q.Page, ProductsPerPage, len(filtered))
	return ProductPage{
		Items:      filtered[start:end],
		Page:       q.Page,
		PerPage:    ProductsPerPage,
		Total:      len(filtered),
		TotalPages: totalPages(len(filtered), ProductsPerPage),
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
