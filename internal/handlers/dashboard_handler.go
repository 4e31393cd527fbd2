package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storeadmin/internal/events"
	"storeadmin/internal/store"
)

// DashboardHandler serves the overview page: collection totals and the
// recent activity feed.
type DashboardHandler struct {
	store    *store.Store
	recorder *events.Recorder
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(st *store.Store, recorder *events.Recorder) *DashboardHandler {
	return &DashboardHandler{store: st, recorder: recorder}
}

// RegisterRoutes registers the dashboard route with the Fiber router.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard returns the stats rendered on the landing page.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"totalUsers":     len(h.store.Users()),
		"totalProducts":  len(h.store.Products()),
		"recentActivity": h.recorder.Recent(),
		"loading":        h.store.Loading(),
		"error":          h.store.Err(),
	})
}
