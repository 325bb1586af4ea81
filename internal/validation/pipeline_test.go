package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleApply(t *testing.T) {
	t.Run("required field rejects empty", func(t *testing.T) {
		_, ferr := NameRule("name").Apply("")
		assert.NotNil(t, ferr)
		assert.Equal(t, "name", ferr.Field)
		assert.Equal(t, "is required", ferr.Message)
	})

	t.Run("optional field accepts empty", func(t *testing.T) {
		out, ferr := EmailRule("email").Apply("")
		assert.Nil(t, ferr)
		assert.Empty(t, out)
	})

	t.Run("steps run in order and normalize", func(t *testing.T) {
		out, ferr := IncomeRule("income").Apply("R$ 5.000,00")
		assert.Nil(t, ferr)
		assert.Equal(t, "5000", out)
	})

	t.Run("first failing step reports its message", func(t *testing.T) {
		_, ferr := CPFRule("cpf").Apply("123")
		assert.NotNil(t, ferr)
		assert.Equal(t, "must have 11 to 14 characters", ferr.Message)

		_, ferr = CPFRule("cpf").Apply("111.111.111-11")
		assert.NotNil(t, ferr)
		assert.Equal(t, "is not a valid CPF", ferr.Message)
	})
}

func TestRecordValidate(t *testing.T) {
	record := NewRecord().
		Field(NameRule("name")).
		Field(EmailRule("email")).
		Field(PhoneRule("phone")).
		Check(RequireEmailOrPhone)

	t.Run("collects all field errors", func(t *testing.T) {
		_, errs := record.Validate(map[string]string{
			"name":  "x",
			"email": "not-an-email",
			"phone": "123",
		})
		assert.Len(t, errs, 3)
	})

	t.Run("record check runs after field rules pass", func(t *testing.T) {
		_, errs := record.Validate(map[string]string{"name": "Joao Silva"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "email or phone is required", errs[0].Message)
	})

	t.Run("returns normalized record on success", func(t *testing.T) {
		values, errs := record.Validate(map[string]string{
			"name":  "Joao Silva",
			"email": "joao@email.com",
		})
		assert.Nil(t, errs)
		assert.Equal(t, "Joao Silva", values["name"])
		assert.Equal(t, "joao@email.com", values["email"])
	})

	t.Run("cpf is stored as submitted", func(t *testing.T) {
		out, ferr := CPFRule("cpf").Apply("529.982.247-25")
		assert.Nil(t, ferr)
		assert.Equal(t, "529.982.247-25", out)
	})
}
