package auth

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	out := make(map[string][]string)
	for _, f := range verr.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

func TestValidateRegister(t *testing.T) {
	v := validator.New()

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, validateRegister(v, "Jo", "a@b.com", "Abcdef12", 8))
	})

	t.Run("blank name", func(t *testing.T) {
		fields := fieldsOf(t, validateRegister(v, "   ", "a@b.com", "Abcdef12", 8))
		assert.Contains(t, fields, "name")
	})

	t.Run("bad email syntax", func(t *testing.T) {
		fields := fieldsOf(t, validateRegister(v, "Jo", "not-an-email", "Abcdef12", 8))
		assert.Contains(t, fields, "email")
	})

	t.Run("password policy", func(t *testing.T) {
		fields := fieldsOf(t, validateRegister(v, "Jo", "a@b.com", "short", 8))
		require.Contains(t, fields, "password")
		// too short, no uppercase, no digit: one message per violation
		assert.Len(t, fields["password"], 3)

		fields = fieldsOf(t, validateRegister(v, "Jo", "a@b.com", "abcdefg1", 8))
		assert.Len(t, fields["password"], 1, "only the uppercase rule should fire")

		fields = fieldsOf(t, validateRegister(v, "Jo", "a@b.com", "Abcdefgh", 8))
		assert.Len(t, fields["password"], 1, "only the digit rule should fire")
	})

	t.Run("multiple offending fields reported together", func(t *testing.T) {
		fields := fieldsOf(t, validateRegister(v, "", "nope", "weak", 8))
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("login input shape", func(t *testing.T) {
		assert.NoError(t, validateLogin(v, "a@b.com", "anything"))

		fields := fieldsOf(t, validateLogin(v, "not-an-email", "Abcdef12"))
		assert.Contains(t, fields, "email")

		fields = fieldsOf(t, validateLogin(v, "a@b.com", ""))
		assert.Contains(t, fields, "password")

		// The password policy does not apply to login: a weak but present
		// password is a credential check, not a validation failure.
		assert.NoError(t, validateLogin(v, "a@b.com", "x"))
	})

	t.Run("configured minimum length", func(t *testing.T) {
		assert.NoError(t, validateRegister(v, "Jo", "a@b.com", "Abcdef12", 8))
		fields := fieldsOf(t, validateRegister(v, "Jo", "a@b.com", "Abcdef12", 12))
		assert.Contains(t, fields, "password")
	})
}
