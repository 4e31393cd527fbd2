package listview

import (
	"sort"

	"storeadmin/internal/models"
)

// User sort fields.
const (
	UserSortID       = "id"
	UserSortName     = "name"
	UserSortEmail    = "email"
	UserSortUsername = "username"
)

// UserQuery is the view state of the users list page.
type UserQuery struct {
	Search string
	SortBy string
	Order  Order
	Page   int
}

// UserPage is one derived page of the users list.
type UserPage struct {
	Items      []models.User `json:"items"`
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// Apply runs the filter/sort/paginate pipeline over the given collection.
func (q UserQuery) Apply(users []models.User) UserPage {
	if q.SortBy == "" {
		q.SortBy = UserSortID
	}
	if q.Order == "" {
		q.Order = Asc
	}
	if q.Page < 1 {
		q.Page = 1
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if containsFold(q.Search, u.Name.Firstname, u.Name.Lastname, u.Email, u.Username) {
			filtered = append(filtered, u)
		}
	}

	coll := newCollator()
	cmp := func(a, b models.User) int {
		switch q.SortBy {
		case UserSortName:
			return coll.CompareString(a.FullName(), b.FullName())
		case UserSortEmail:
			return coll.CompareString(a.Email, b.Email)
		case UserSortUsername:
			return coll.CompareString(a.Username, b.Username)
		default:
			return a.ID - b.ID
		}
	}
	// Stable sort: ties keep collection order, there is no secondary key.
	sort.SliceStable(filtered, func(i, j int) bool {
		c := cmp(filtered[i], filtered[j])
		if q.Order == Desc {
			return c > 0
		}
		return c < 0
	})

	start, end := pageBounds(q.Page, UsersPerPage, len(filtered))
	return UserPage{
		Items:      filtered[start:end],
		Page:       q.Page,
		PerPage:    UsersPerPage,
		Total:      len(filtered),
		TotalPages: totalPages(len(filtered), UsersPerPage),
	}
}
