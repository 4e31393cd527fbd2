package models

// Theme describes the dashboard's visual style. Clients render the
// background and sidebar from these values.
type Theme struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	SidebarStyle    string `json:"sidebarStyle"`
}

// Themes are the predefined styles the theme switcher offers.
var Themes = map[string]Theme{
	"dark":        {Name: "dark", BackgroundColor: "bg-dark bg-gradient", SidebarStyle: "dark"},
	"light":       {Name: "light", BackgroundColor: "bg-light", SidebarStyle: "light"},
	"blue":        {Name: "blue", BackgroundColor: "bg-primary bg-gradient", SidebarStyle: "blue"},
	"transparent": {Name: "transparent", BackgroundColor: "bg-transparent", SidebarStyle: "transparent"},
}

// DefaultTheme is applied at startup.
const DefaultTheme = "dark"
