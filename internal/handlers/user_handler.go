package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storeadmin/internal/forms"
	"storeadmin/internal/listview"
	"storeadmin/internal/models"
	"storeadmin/internal/store"
	"storeadmin/internal/storeapi"
)

// UserHandler handles HTTP requests for the users pages.
type UserHandler struct {
	store    *store.Store
	api      storeapi.API
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(st *store.Store, api storeapi.API, log *zap.Logger) *UserHandler {
	return &UserHandler{
		store:    st,
		api:      api,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the user routes with the Fiber router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.HandleList)
	users.Get("/:id", h.HandleGet)
	users.Post("/", h.HandleCreate)
	users.Put("/:id", h.HandleUpdate)
	users.Delete("/:id", h.HandleDelete)
}

// HandleList returns one derived page of the users list.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	query := listview.UserQuery{
		Search: c.Query("search"),
		SortBy: c.Query("sort", listview.UserSortID),
		Order:  listview.Order(c.Query("order", string(listview.Asc))),
		Page:   c.QueryInt("page", 1),
	}

	page := query.Apply(h.store.Users())
	page.Items = scrubUsers(page.Items)

	return c.JSON(fiber.Map{
		"users":      page,
		"loading":    h.store.Loading(),
		"searchTerm": query.Search,
		"sortBy":     query.SortBy,
		"sortOrder":  query.Order,
	})
}

// HandleGet returns the detail view of a single user, fetched by id from
// the upstream API.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user id",
		})
	}

	user, err := h.api.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, storeapi.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		h.log.Error("failed to fetch user details", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch user details. Please try again later.",
			"error":   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{"user": user})
}

// HandleCreate validates the add-user form and submits it through the
// store.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var form forms.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := form.ValidateCreate(h.validate); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	created, err := h.store.AddUser(c.Context(), form.Build())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to create user. Please try again later.",
			"error":   err.Error(),
		})
	}

	created.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User successfully created!",
		"user":    created,
	})
}

// HandleUpdate validates the edit-user form and submits the full-record
// replace through the store.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user id",
		})
	}

	var form forms.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := form.ValidateEdit(h.validate); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	updated, err := h.store.UpdateUser(c.Context(), id, form.Build())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to update user. Please try again later.",
			"error":   err.Error(),
		})
	}

	updated.Password = ""
	return c.JSON(fiber.Map{
		"message": "User successfully updated!",
		"user":    updated,
	})
}

// HandleDelete removes a user.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user id",
		})
	}

	if err := h.store.DeleteUser(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to delete user. Please try again later.",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully!"})
}

// scrubUsers blanks write-only fields before rendering a collection.
func scrubUsers(users []models.User) []models.User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
