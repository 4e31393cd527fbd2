package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storeadmin/internal/store"
)

// NotificationHandler exposes the active toast queue and the early
// dismissal path.
type NotificationHandler struct {
	store *store.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

// RegisterRoutes registers the notification routes with the Fiber router.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notifications := router.Group("/notifications")
	notifications.Get("/", h.HandleList)
	notifications.Delete("/:id", h.HandleDismiss)
}

// HandleList returns the notifications that have not yet expired.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"notifications": h.store.Notifications()})
}

// HandleDismiss removes a notification ahead of its expiry.
func (h *NotificationHandler) HandleDismiss(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification id",
		})
	}

	if !h.store.Dismiss(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Notification not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Notification dismissed"})
}
