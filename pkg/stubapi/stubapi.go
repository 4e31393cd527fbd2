// Package stubapi is an embedded, fakestoreapi-compatible upstream used
// by integration tests and by local development (LOCAL_API=true). Records
// live in an in-memory SQLite database for the lifetime of the server; the
// dashboard itself never persists anything.
package stubapi

import (
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storeadmin/internal/models"
)

// record stores one resource entry as raw JSON, keyed by resource kind
// and server-assigned id.
type record struct {
	Resource string `gorm:"primaryKey;size:16"`
	ID       int    `gorm:"primaryKey;autoIncrement:false"`
	Body     []byte
}

var dbSeq atomic.Int64

// Server is the stub upstream API.
type Server struct {
	app *fiber.App
	db  *gorm.DB
	ln  net.Listener
}

// New creates a Server backed by a fresh in-memory database.
func New() (*Server, error) {
	// A named shared-cache DSN keeps GORM's pooled connections on the
	// same in-memory database while isolating separate servers.
	dsn := fmt.Sprintf("file:stubapi_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate stub schema: %w", err)
	}

	s := &Server{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
		db:  db,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	for _, res := range []string{"users", "products"} {
		s.app.Get("/"+res, s.handleList(res))
		s.app.Get("/"+res+"/:id", s.handleGet(res))
		s.app.Post("/"+res, s.handleCreate(res))
		s.app.Put("/"+res+"/:id", s.handleUpdate(res))
		s.app.Delete("/"+res+"/:id", s.handleDelete(res))
	}
}

// Start serves on an ephemeral localhost port and returns the base URL.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}
	s.ln = ln
	go func() { _ = s.app.Listener(ln) }()
	return "http://" + ln.Addr().String(), nil
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) nextID(resource string) (int, error) {
	var maxID int
	err := s.db.Model(&record{}).
		Where("resource = ?", resource).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

func (s *Server) handleList(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recs []record
		if err := s.db.Where("resource = ?", resource).Order("id").Find(&recs).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		items := make([]json.RawMessage, 0, len(recs))
		for _, r := range recs {
			items = append(items, json.RawMessage(r.Body))
		}
		return c.JSON(items)
	}
}

func (s *Server) handleGet(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		var rec record
		err = s.db.Where("resource = ? AND id = ?", resource, id).First(&rec).Error
		if err != nil {
			// The real upstream answers unknown ids with an empty 200.
			return c.SendString("")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(rec.Body)
	}
}

func (s *Server) handleCreate(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload map[string]any
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
		id, err := s.nextID(resource)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		payload["id"] = id
		body, err := json.Marshal(payload)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := s.db.Create(&record{Resource: resource, ID: id, Body: body}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
}

func (s *Server) handleUpdate(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		var payload map[string]any
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
		payload["id"] = id
		body, err := json.Marshal(payload)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// Echo regardless of existence, like the real upstream; persist
		// only when the record is actually there.
		res := s.db.Model(&record{}).
			Where("resource = ? AND id = ?", resource, id).
			Update("body", body)
		if res.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
}

func (s *Server) handleDelete(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		var rec record
		err = s.db.Where("resource = ? AND id = ?", resource, id).First(&rec).Error
		if err != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString("null")
		}
		if err := s.db.Delete(&record{}, "resource = ? AND id = ?", resource, id).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(rec.Body)
	}
}

// SeedUsers inserts users with server-assigned ids.
func (s *Server) SeedUsers(users []models.User) error {
	for _, u := range users {
		id, err := s.nextID("users")
		if err != nil {
			return err
		}
		u.ID = id
		body, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if err := s.db.Create(&record{Resource: "users", ID: id, Body: body}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts products with server-assigned ids.
func (s *Server) SeedProducts(products []models.Product) error {
	for _, p := range products {
		id, err := s.nextID("products")
		if err != nil {
			return err
		}
		p.ID = id
		body, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := s.db.Create(&record{Resource: "products", ID: id, Body: body}).Error; err != nil {
			return err
		}
	}
	return nil
}
