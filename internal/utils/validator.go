package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New()
	// "notblank" rejects strings made only of whitespace.
	if err := Validate.RegisterValidation("notblank", notBlank); err != nil {
		log.Fatalf("registering notblank validation: %v", err)
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
