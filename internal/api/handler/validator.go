package handler

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule on one submitted field, rendered back into
// the originating form.
type FieldError struct {
	Field   string
	Message string
}

// formValidator wraps go-playground/validator and converts rule failures into
// an ordered field/message list for form re-rendering.
type formValidator struct {
	v *validator.Validate
}

// NewFormValidator returns a validator with the form tag names and the
// password digit rule registered.
func NewFormValidator() *formValidator {
	v := validator.New()

	// Report errors under the submitted field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("contemnumero", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				return true
			}
		}
		return false
	})

	return &formValidator{v: v}
}

// Check validates a bound form struct. A nil result means success; otherwise
// the failures come back in field declaration order.
func (fv *formValidator) Check(form any) []FieldError {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Ocorreu um erro!"}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

// fieldMessage converts a single rule failure into the user-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório"
	case "email":
		return "Email inválido"
	case "min":
		return "Senha muito curta"
	case "contemnumero":
		return "A senha precisa conter um número"
	case "eqfield":
		return "As senhas precisam ser iguais"
	default:
		return "Campo inválido"
	}
}
