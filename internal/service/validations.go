package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/studyos/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Rejects strings made only of whitespace
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// Document references must point at a PDF
		validate.RegisterValidation("pdf_name", func(fl validator.FieldLevel) bool {
			return strings.HasSuffix(strings.ToLower(fl.Field().String()), ".pdf")
		})
	})
}

// validateStruct joins ErrValidation with every failed field so callers can
// both match the sentinel and show what went wrong.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.Join(errorvalues.ErrValidation, err)
}

func validationError(msg string) error {
	return errors.Join(errorvalues.ErrValidation, errors.New(msg))
}
