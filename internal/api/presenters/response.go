package presenters

import (
	"errors"

	"Recipe-Book/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFor maps an error kind to an HTTP status. notFound is the status
// used for missing resources, which differs between pages and sub-resources.
// A foreign key violation on a write means the token outlived its user.
func StatusFor(err error, notFound int) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return notFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceError writes an error produced by a service. Unclassified errors
// are logged and replaced by a generic message.
func ServiceError(c *fiber.Ctx, err error, notFound int, message string) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		err = domain.ErrAccountGone
	}
	status := StatusFor(err, notFound)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return ErrorResponse(c, status, domain.MessageSomethingWentWrong, nil)
	}
	return ErrorResponse(c, status, message, err)
}
