package handler

import (
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CRUDHandler serves the five endpoints of one resource.
type CRUDHandler[V, C, U any] struct {
	service service.Accessor[V, C, U]
	label   string
}

// NewCRUDHandler builds a handler; label names the resource in delete
// confirmations, e.g. "Customer".
func NewCRUDHandler[V, C, U any](svc service.Accessor[V, C, U], label string) *CRUDHandler[V, C, U] {
	return &CRUDHandler[V, C, U]{service: svc, label: label}
}

// Register mounts the handler on router, which is usually a group such as
// app.Group("/customer").
func (h *CRUDHandler[V, C, U]) Register(router fiber.Router) {
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Post("/", h.Create)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

// List returns every row
// GET /{resource}/
func (h *CRUDHandler[V, C, U]) List(c *fiber.Ctx) error {
	rows, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Get returns a single row by ID
// GET /{resource}/:id
func (h *CRUDHandler[V, C, U]) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	row, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

// Create handles row creation
// POST /{resource}/
func (h *CRUDHandler[V, C, U]) Create(c *fiber.Ctx) error {
	req := new(C)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	row, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update handles full or partial replacement, depending on the resource
// PUT /{resource}/:id
func (h *CRUDHandler[V, C, U]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	req := new(U)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	row, err := h.service.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

// Delete handles row deletion
// DELETE /{resource}/:id
func (h *CRUDHandler[V, C, U]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": h.label + " deleted successfully"})
}
