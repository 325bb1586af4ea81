package validation

// Rule constructors for the account domain. Field names follow the JSON
// payload paths so errors point at the offending request field.

// NameRule requires a name of at least two characters.
func NameRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: minLen(2), Message: "must have at least 2 characters"},
	}}
}

// EmailRule validates an optional email address.
func EmailRule(field string) Rule {
	return Rule{Field: field, Optional: true, Steps: []Step{
		{Check: ValidEmail, Message: "must be a valid email address"},
	}}
}

// PhoneRule validates an optional Brazilian phone number.
func PhoneRule(field string) Rule {
	return Rule{Field: field, Optional: true, Steps: []Step{
		{Check: ValidPhone, Message: "must be a valid phone number with 10 to 15 characters"},
	}}
}

// CPFRule validates format and check digits. The value is intentionally not
// normalized: a CPF is stored exactly as submitted.
func CPFRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: lenBetween(11, 14), Message: "must have 11 to 14 characters"},
		{Check: ValidCPF, Message: "is not a valid CPF"},
	}}
}

// RGRule validates an RG identifier, stored as submitted.
func RGRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: ValidRG, Message: "must have 7 to 12 digits"},
	}}
}

// IncomeRule validates a free-text currency amount and normalizes it to a
// canonical decimal string.
func IncomeRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{
			Check:     func(s string) bool { _, ok := NormalizeIncome(s); return ok },
			Normalize: normalizeIncomeString,
			Message:   "must be a valid positive amount",
		},
	}}
}

// PasswordRule requires a minimum password length.
func PasswordRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: minLen(6), Message: "must have at least 6 characters"},
	}}
}

// StreetRule requires a non-empty street line.
func StreetRule(field string) Rule {
	return Rule{Field: field, Steps: nil}
}

// CEPRule validates a postal code.
func CEPRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: ValidCEP, Message: "must be in the format 00000-000"},
	}}
}

// CityRule requires a non-empty city.
func CityRule(field string) Rule {
	return Rule{Field: field, Steps: nil}
}

// StateRule validates a two-letter uppercase state code.
func StateRule(field string) Rule {
	return Rule{Field: field, Steps: []Step{
		{Check: ValidState, Message: "must be a two-letter uppercase state code"},
	}}
}

// RequireEmailOrPhone is the record-level rule that registration and login
// share: at least one contact identifier must be present.
func RequireEmailOrPhone(values map[string]string) *FieldError {
	if values["email"] == "" && values["phone"] == "" {
		return &FieldError{Field: "email", Message: "email or phone is required"}
	}
	return nil
}

func minLen(n int) func(string) bool {
	return func(s string) bool { return len(s) >= n }
}

func lenBetween(lo, hi int) func(string) bool {
	return func(s string) bool { return len(s) >= lo && len(s) <= hi }
}

func normalizeIncomeString(s string) string {
	value, ok := NormalizeIncome(s)
	if !ok {
		return s
	}
	return value.String()
}
