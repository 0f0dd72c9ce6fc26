package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FieldErrors collects per-field validation messages for the errors slot of
// the response envelope.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func ok(c *fiber.Ctx, status int, message string, object interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"object":  object,
		"errors":  nil,
	})
}

func okPaged(c *fiber.Ctx, message string, object interface{}, page, pageSize int, total int64) error {
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     message,
		"object":      object,
		"page_number": page,
		"page_size":   pageSize,
		"total_size":  total,
		"errors":      nil,
	})
}

func fail(c *fiber.Ctx, status int, message string, errs ...string) error {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"object":  nil,
		"errors":  errs,
	})
}

func validationFail(c *fiber.Ctx, message string, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"object":  nil,
		"errors":  errs,
	})
}

func getAuth(c *fiber.Ctx) (uuid.UUID, error) {
	rawID, ok := c.Locals("userId").(string)
	if !ok || rawID == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	uID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id")
	}
	return uID, nil
}

func isUniqueViolation(err error) bool {
	// postgres unique violation
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint")
}

// parsePagination reads page/page_size query params with the endpoint's
// defaults and cap.
func parsePagination(c *fiber.Ctx, defSize, maxSize int) (page, pageSize, offset int) {
	page = c.QueryInt("page", 1)
	pageSize = c.QueryInt("page_size", defSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize, (page - 1) * pageSize
}
