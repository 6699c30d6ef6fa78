package handler

import (
	"errors"
	"strconv"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id")

// parseID reads the :id route parameter, which must be a positive integer.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var (
		notFound   *service.NotFoundError
		conflict   *service.ConflictError
		reference  *service.ReferenceError
		validation *service.ValidationError
		badRequest *service.BadRequestError
		fault      *service.StoreFault
	)
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": conflict.Error(), "field": conflict.Field})
	case errors.As(err, &reference):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": reference.Error(), "field": reference.Field})
	case errors.As(err, &validation):
		body := fiber.Map{"error": validation.Error()}
		if validation.Field != "" {
			body["field"] = validation.Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.As(err, &badRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": badRequest.Error()})
	case errors.As(err, &fault):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fault.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
