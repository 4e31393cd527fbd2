package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"storeadmin/internal/models"
)

// UserForm carries the fields of the add/edit user forms. All values
// arrive as text; Build normalizes them into the model shape. The
// password rule is omitempty so the same form serves edits, where the
// password is not collected; ValidateCreate adds the required check.
type UserForm struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Name     struct {
		Firstname string `json:"firstname" validate:"required"`
		Lastname  string `json:"lastname" validate:"required"`
	} `json:"name"`
	Address struct {
		City        string `json:"city" validate:"required"`
		Street      string `json:"street" validate:"required"`
		Number      string `json:"number" validate:"required,number"`
		Zipcode     string `json:"zipcode" validate:"required"`
		Geolocation struct {
			Lat  string `json:"lat" validate:"required"`
			Long string `json:"long" validate:"required"`
		} `json:"geolocation"`
	} `json:"address"`
	Phone string `json:"phone" validate:"required"`
}

// ValidateCreate checks the rules for the add-user form. Returns a
// field -> message map, empty on success.
func (f *UserForm) ValidateCreate(v *validator.Validate) map[string]string {
	errs := collect(v.Struct(f))
	if f.Password == "" {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateEdit checks the rules for the edit-user form, where the
// password is optional.
func (f *UserForm) ValidateEdit(v *validator.Validate) map[string]string {
	errs := collect(v.Struct(f))
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Build produces the request payload. Call only after validation passed.
func (f *UserForm) Build() models.User {
	number, _ := strconv.Atoi(f.Address.Number)
	return models.User{
		Email:    f.Email,
		Username: f.Username,
		Password: f.Password,
		Name: models.Name{
			Firstname: f.Name.Firstname,
			Lastname:  f.Name.Lastname,
		},
		Address: models.Address{
			City:    f.Address.City,
			Street:  f.Address.Street,
			Number:  number,
			Zipcode: f.Address.Zipcode,
			Geolocation: models.Geolocation{
				Lat:  f.Address.Geolocation.Lat,
				Long: f.Address.Geolocation.Long,
			},
		},
		Phone: f.Phone,
	}
}
