package auth

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level input failures. It is returned before
// any storage or hashing work happens.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type registerInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// validateLogin checks login input shape only: email syntax and password
// presence. Credential policy never applies here; a policy-violating password
// still reaches verification so the failure stays indistinguishable.
func validateLogin(v *validator.Validate, email, password string) error {
	var fields []FieldError
	if err := v.Struct(loginInput{Email: email, Password: password}); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Email":
				fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
			case "Password":
				fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateRegister checks registration input and returns nil or a
// ValidationError with one message per offending field. The password policy is
// explicit code rather than struct tags because the minimum length is runtime
// configuration.
func validateRegister(v *validator.Validate, name, email, password string, minPasswordLen int) error {
	var fields []FieldError

	input := registerInput{Name: strings.TrimSpace(name), Email: email}
	if err := v.Struct(input); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Name":
				fields = append(fields, FieldError{Field: "name", Message: "Name cannot be empty"})
			case "Email":
				fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
			}
		}
	}

	fields = append(fields, validatePassword(password, minPasswordLen)...)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validatePassword(password string, minLen int) []FieldError {
	var fields []FieldError
	if len(password) < minLen {
		fields = append(fields, FieldError{Field: "password", Message: fmt.Sprintf("Password must be at least %d characters", minLen)})
	}
	var hasUpper, hasDigit bool
	for _, c := range password {
		if unicode.IsUpper(c) {
			hasUpper = true
		}
		if unicode.IsDigit(c) {
			hasDigit = true
		}
	}
	if !hasUpper {
		fields = append(fields, FieldError{Field: "password", Message: "Password must contain at least one uppercase letter"})
	}
	if !hasDigit {
		fields = append(fields, FieldError{Field: "password", Message: "Password must contain at least one digit"})
	}
	return fields
}
