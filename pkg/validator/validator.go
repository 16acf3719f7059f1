package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator valida structs de entrada (DTOs).
type Validator interface {
	// Validate valida el struct dado
	Validate(s any) error
}

// DefaultValidator implementación sobre go-playground/validator.
type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator crea el validador con las reglas propias registradas.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	// Nombres de campo según la etiqueta json, para que los mensajes coincidan con el cuerpo recibido.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		return nil, fmt.Errorf("registrar validador decimal: %w", err)
	}
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return nil, fmt.Errorf("registrar validador notblank: %w", err)
	}

	return &DefaultValidator{v: v}, nil
}

// Validate valida s y devuelve validator.ValidationErrors si alguna regla falla.
func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError indica si err es un error de validación.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// Message arma un mensaje legible con todos los campos inválidos.
func Message(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), ValidationErrorMessage(fe)))
	}
	return strings.Join(parts, "; ")
}

// ValidationErrorMessage traduce una regla fallida a un mensaje en español.
func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es obligatorio"
	case "notblank":
		return "no puede estar vacío"
	case "min":
		return fmt.Sprintf("debe tener al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de [%s]", fe.Param())
	case "decimal":
		return "debe ser un número válido"
	default:
		return "no es válido"
	}
}

func validateDecimal(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true // "required" decide si puede faltar
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
