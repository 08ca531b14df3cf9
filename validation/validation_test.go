package validation

import (
	"strings"
	"testing"

	"github.com/commercekit/commercekit/errors"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate_Success(t *testing.T) {
	in := loginInput{Email: "a@b.com", Password: "secret1"}
	if err := Validate(in); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(loginInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("error should name the email field, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "password") {
		t.Errorf("error should name the password field, got %q", err.Error())
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	err := Validate(loginInput{Email: "not-an-email", Password: "secret1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "valid email") {
		t.Errorf("expected email message, got %q", err.Error())
	}
}

func TestValidate_FieldDetails(t *testing.T) {
	err := Validate(loginInput{Email: "a@b.com", Password: "ab"})
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	fields, ok := e.Details["fields"].([]FieldError)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error, got %v", e.Details["fields"])
	}
	if fields[0].Field != "password" {
		t.Errorf("expected password field, got %s", fields[0].Field)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("CurrencyCode"); got != "currency_code" {
		t.Errorf("expected currency_code, got %s", got)
	}
}
