package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(fe []FieldError, field, frag string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, frag) {
			return true
		}
	}
	return false
}

func TestLoomTypeValidation(t *testing.T) {
	type P struct {
		LoomType string `validate:"loomtype"`
	}
	cv := NewValidator()

	for _, s := range []string{"Handloom", "Powerloom", "OutsideHandloom", "OutsidePowerloom"} {
		if err := cv.Validate(P{LoomType: s}); err != nil {
			t.Fatalf("expected valid loomtype %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "handloom", "HANDLOOM", "Outside Handloom", "Loom"} {
		err := cv.Validate(P{LoomType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoomType", "must be one of") {
			t.Fatalf("expected loomtype message for %q, got: %+v", s, fe)
		}
	}
}

func TestPayTypeValidation(t *testing.T) {
	type P struct {
		PaymentType string `validate:"paytype"`
	}
	cv := NewValidator()

	for _, s := range []string{"credit", "debit"} {
		if err := cv.Validate(P{PaymentType: s}); err != nil {
			t.Fatalf("expected valid paytype %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "Credit", "transfer", "DEBIT"} {
		err := cv.Validate(P{PaymentType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "PaymentType", "credit or debit") {
			t.Fatalf("expected paytype message for %q, got: %+v", s, fe)
		}
	}
}

func TestPhoneValidation(t *testing.T) {
	type P struct {
		Phone string `validate:"phone"`
	}
	cv := NewValidator()

	for _, s := range []string{"9000000001", "+91 9000000", "040-2345678"} {
		if err := cv.Validate(P{Phone: s}); err != nil {
			t.Fatalf("expected valid phone %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "abc", "12345", "12345678901234567890"} {
		err := cv.Validate(P{Phone: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Phone", "phone") {
			t.Fatalf("expected phone message for %q, got: %+v", s, fe)
		}
	}
}
