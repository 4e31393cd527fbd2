package listview_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"storeadmin/internal/listview"
	"storeadmin/internal/models"
)

func user(id int, first, last, email, username string) models.User {
	return models.User{
		ID:       id,
		Email:    email,
		Username: username,
		Name:     models.Name{Firstname: first, Lastname: last},
	}
}

func TestUserFilterMatchesSearchableFields(t *testing.T) {
	users := []models.User{
		user(1, "Ann", "Lee", "ann@example.com", "annlee"),
		user(2, "Bo", "Chen", "bo@example.com", "bochen"),
		user(3, "Cara", "Ngo", "cara@test.org", "cngo"),
	}

	// Case-insensitive substring over first name, last name, email, username.
	page := listview.UserQuery{Search: "LEE"}.Apply(users)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ID)

	page = listview.UserQuery{Search: "example.com"}.Apply(users)
	assert.Len(t, page.Items, 2)

	page = listview.UserQuery{Search: "cngo"}.Apply(users)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].ID)

	// No match.
	page = listview.UserQuery{Search: "zzz"}.Apply(users)
	assert.Empty(t, page.Items)
}

func TestUserFilterEmptyTermKeepsOrder(t *testing.T) {
	users := []models.User{
		user(3, "Cara", "Ngo", "cara@test.org", "cngo"),
		user(1, "Ann", "Lee", "ann@example.com", "annlee"),
	}

	// Empty term passes all records; default sort is by id.
	page := listview.UserQuery{}.Apply(users)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Items[0].ID)
	assert.Equal(t, 3, page.Items[1].ID)
}

func TestUserSortByNameAndToggle(t *testing.T) {
	users := []models.User{
		user(1, "Ann", "Lee", "ann@example.com", "annlee"),
		user(2, "Bo", "Chen", "bo@example.com", "bochen"),
	}

	asc := listview.UserQuery{SortBy: listview.UserSortName, Order: listview.Asc}.Apply(users)
	assert.Equal(t, "Ann Lee", asc.Items[0].FullName())
	assert.Equal(t, "Bo Chen", asc.Items[1].FullName())

	// Toggling the direction on the same field reverses the order.
	desc := listview.UserQuery{SortBy: listview.UserSortName, Order: listview.Desc}.Apply(users)
	assert.Equal(t, "Bo Chen", desc.Items[0].FullName())
	assert.Equal(t, "Ann Lee", desc.Items[1].FullName())
}

func TestSortReverseIsExactReverse(t *testing.T) {
	users := []models.User{
		user(4, "Dee", "Ohm", "dee@example.com", "dohm"),
		user(2, "Bo", "Chen", "bo@example.com", "bochen"),
		user(1, "Ann", "Lee", "ann@example.com", "annlee"),
		user(3, "Cara", "Ngo", "cara@test.org", "cngo"),
	}

	for _, field := range []string{
		listview.UserSortID,
		listview.UserSortName,
		listview.UserSortEmail,
		listview.UserSortUsername,
	} {
		asc := listview.UserQuery{SortBy: field, Order: listview.Asc}.Apply(users)
		desc := listview.UserQuery{SortBy: field, Order: listview.Desc}.Apply(users)

		assert.Len(t, desc.Items, len(asc.Items))
		for i := range asc.Items {
			assert.Equal(t, asc.Items[i].ID, desc.Items[len(desc.Items)-1-i].ID,
				"field %s position %d", field, i)
		}
	}
}

func TestUserPaginationIsExhaustive(t *testing.T) {
	var users []models.User
	for i := 1; i <= 20; i++ {
		users = append(users, user(i, "First", "Last",
			fmt.Sprintf("u%02d@example.com", i), fmt.Sprintf("user%02d", i)))
	}

	full := listview.UserQuery{}.Apply(users)
	assert.Equal(t, 20, full.Total)
	assert.Equal(t, 3, full.TotalPages)

	var collected []int
	for p := 1; p <= full.TotalPages; p++ {
		page := listview.UserQuery{Page: p}.Apply(users)
		for _, u := range page.Items {
			collected = append(collected, u.ID)
		}
	}

	// Concatenating all pages reproduces the full sequence, no duplicates
	// or omissions; last page carries the remainder.
	assert.Len(t, collected, 20)
	for i, id := range collected {
		assert.Equal(t, i+1, id)
	}
	last := listview.UserQuery{Page: 3}.Apply(users)
	assert.Len(t, last.Items, 4) // 20 mod 8
}

func TestOutOfRangePageIsEmpty(t *testing.T) {
	users := []models.User{user(1, "Ann", "Lee", "ann@example.com", "annlee")}

	page := listview.UserQuery{Page: 5}.Apply(users)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProductFilterAndNumericSort(t *testing.T) {
	products := []models.Product{
		{ID: 1, Title: "Gold Ring", Category: "jewelery", Price: 99.50},
		{ID: 2, Title: "Laptop Pro", Category: "electronics", Price: 1200},
		{ID: 3, Title: "Wool Jacket", Category: "men's clothing", Price: 55.99},
		{ID: 4, Title: "USB Cable", Category: "electronics", Price: 9.99},
	}

	// Filter over title and category.
	page := listview.ProductQuery{Search: "electronics"}.Apply(products)
	assert.Len(t, page.Items, 2)

	page = listview.ProductQuery{Search: "ring"}.Apply(products)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ID)

	// Price compares numerically, not lexicographically.
	page = listview.ProductQuery{SortBy: listview.ProductSortPrice, Order: listview.Asc}.Apply(products)
	assert.Equal(t, []int{4, 3, 1, 2}, ids(page.Items))

	page = listview.ProductQuery{SortBy: listview.ProductSortPrice, Order: listview.Desc}.Apply(products)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(page.Items))
}

func TestProductPageSize(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 8; i++ {
		products = append(products, models.Product{ID: i, Title: fmt.Sprintf("P%d", i), Category: "electronics", Price: float64(i)})
	}

	first := listview.ProductQuery{Page: 1}.Apply(products)
	assert.Len(t, first.Items, 6)
	second := listview.ProductQuery{Page: 2}.Apply(products)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, 2, second.TotalPages)
}

func TestStableSortKeepsTieOrder(t *testing.T) {
	products := []models.Product{
		{ID: 10, Title: "Same", Category: "electronics", Price: 5},
		{ID: 2, Title: "Same", Category: "electronics", Price: 5},
		{ID: 7, Title: "Same", Category: "electronics", Price: 5},
	}

	page := listview.ProductQuery{SortBy: listview.ProductSortTitle}.Apply(products)
	assert.Equal(t, []int{10, 2, 7}, ids(page.Items))
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
