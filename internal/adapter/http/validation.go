package http

import (
	"regexp"

	loomDomain "loomledger-backend/internal/domain/loom"
	paymentDomain "loomledger-backend/internal/domain/payment"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var rePhone = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// loom category must match the fixed enumeration exactly
	_ = v.RegisterValidation("loomtype", func(fl validator.FieldLevel) bool {
		return loomDomain.ValidType(loomDomain.Type(fl.Field().String()))
	})
	// payment direction
	_ = v.RegisterValidation("paytype", func(fl validator.FieldLevel) bool {
		return paymentDomain.ValidType(paymentDomain.Type(fl.Field().String()))
	})
	// loose phone number shape
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "loomtype":
			out = append(out, FieldError{Field: field, Message: "must be one of Handloom, Powerloom, OutsideHandloom, OutsidePowerloom"})
		case "paytype":
			out = append(out, FieldError{Field: field, Message: "must be credit or debit"})
		case "phone":
			out = append(out, FieldError{Field: field, Message: "must be a valid phone number"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
