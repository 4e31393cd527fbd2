package handlers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"storeadmin/internal/models"
)

// ThemeHandler holds the dashboard's active theme and the switcher
// endpoints.
type ThemeHandler struct {
	mu      sync.Mutex
	current models.Theme
}

// NewThemeHandler creates a ThemeHandler starting on the default theme.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{current: models.Themes[models.DefaultTheme]}
}

// RegisterRoutes registers the theme routes with the Fiber router.
func (h *ThemeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/theme", h.HandleGet)
	router.Put("/theme", h.HandleSet)
}

// HandleGet returns the active theme and the available choices.
func (h *ThemeHandler) HandleGet(c *fiber.Ctx) error {
	h.mu.Lock()
	current := h.current
	h.mu.Unlock()

	return c.JSON(fiber.Map{
		"theme":  current,
		"themes": models.Themes,
	})
}

// HandleSet switches to one of the predefined themes by name.
func (h *ThemeHandler) HandleSet(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	theme, ok := models.Themes[req.Name]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown theme",
		})
	}

	h.mu.Lock()
	h.current = theme
	h.mu.Unlock()

	return c.JSON(fiber.Map{"theme": theme})
}
