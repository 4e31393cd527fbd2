package models

// Name is the first/last name pair every user carries. The upstream API
// always returns this object shape, never a plain string, so it is the
// only shape the rest of the app has to deal with.
type Name struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
}

// Geolocation coordinates stay strings, matching the upstream wire
// format ("-37.3159").
type Geolocation struct {
	Lat  string `json:"lat" validate:"required"`
	Long string `json:"long" validate:"required"`
}

// Address of a user. The street number is normalized to an int at the
// ingestion boundary; forms accept it as text and parse it.
type Address struct {
	City        string      `json:"city" validate:"required"`
	Street      string      `json:"street" validate:"required"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode" validate:"required"`
	Geolocation Geolocation `json:"geolocation"`
}

// User represents a user of the store. IDs are assigned by the upstream
// API on creation. The password is write-only: it is sent on create and
// update but never rendered back to dashboard clients.
type User struct {
	ID       int     `json:"id"`
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Password string  `json:"password,omitempty" validate:"required,min=6"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone" validate:"required"`
}

// FullName returns the display name used for list sorting and search.
func (u User) FullName() string {
	return u.Name.Firstname + " " + u.Name.Lastname
}
