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

// ProductHandler handles HTTP requests for the products pages.
type ProductHandler struct {
	store    *store.Store
	api      storeapi.API
	validate *validator.Validate
	log      *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(st *store.Store, api storeapi.API, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		store:    st,
		api:      api,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/categories", h.HandleCategories)
	products.Get("/:id", h.HandleGet)
	products.Post("/", h.HandleCreate)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList returns one derived page of the products list.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	query := listview.ProductQuery{
		Search: c.Query("search"),
		SortBy: c.Query("sort", listview.ProductSortID),
		Order:  listview.Order(c.Query("order", string(listview.Asc))),
		Page:   c.QueryInt("page", 1),
	}

	page := query.Apply(h.store.Products())

	return c.JSON(fiber.Map{
		"products":   page,
		"loading":    h.store.Loading(),
		"searchTerm": query.Search,
		"sortBy":     query.SortBy,
		"sortOrder":  query.Order,
	})
}

// HandleCategories returns the category choices offered by the product
// form.
func (h *ProductHandler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.ProductCategories})
}

// HandleGet returns the detail view of a single product, fetched by id
// from the upstream API.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	product, err := h.api.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, storeapi.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		h.log.Error("failed to fetch product details", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch product details. Please try again later.",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"product": product})
}

// HandleCreate validates the add-product form and submits it through the
// store.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := form.Validate(h.validate); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	created, err := h.store.AddProduct(c.Context(), form.Build())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to create product. Please try again later.",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product successfully created!",
		"product": created,
	})
}

// HandleUpdate validates the edit-product form and submits the
// full-record replace through the store.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	var form forms.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := form.Validate(h.validate); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	updated, err := h.store.UpdateProduct(c.Context(), id, form.Build())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to update product. Please try again later.",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product successfully updated!",
		"product": updated,
	})
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	if err := h.store.DeleteProduct(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to delete product. Please try again later.",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully!"})
}
