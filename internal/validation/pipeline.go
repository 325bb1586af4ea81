package validation

import (
	"fmt"
	"strings"
)

// FieldError reports a single rejected field with its path and a
// human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the list of per-field failures produced by a record
// validation pass. It implements error so services can return it directly.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Step is one stage of a field pipeline: an optional normalization applied
// first, then a predicate. When the predicate fails, Message is reported for
// the field.
type Step struct {
	Normalize func(string) string
	Check     func(string) bool
	Message   string
}

// Rule runs an ordered list of steps against a single named field. Optional
// rules accept the empty string without running any step.
type Rule struct {
	Field    string
	Optional bool
	Steps    []Step
}

// Apply returns the normalized value, or a FieldError naming the first step
// that rejected it.
func (r Rule) Apply(value string) (string, *FieldError) {
	if value == "" {
		if r.Optional {
			return "", nil
		}
		return "", &FieldError{Field: r.Field, Message: "is required"}
	}
	for _, step := range r.Steps {
		if step.Normalize != nil {
			value = step.Normalize(value)
		}
		if step.Check != nil && !step.Check(value) {
			return "", &FieldError{Field: r.Field, Message: step.Message}
		}
	}
	return value, nil
}

// Record composes field rules and record-level checks into a validator that
// returns either a fully normalized record or the list of field errors.
type Record struct {
	rules  []Rule
	checks []func(values map[string]string) *FieldError
}

// NewRecord creates an empty record validator.
func NewRecord() *Record {
	return &Record{}
}

// Field appends a field rule.
func (r *Record) Field(rule Rule) *Record {
	r.rules = append(r.rules, rule)
	return r
}

// Check appends a record-level check run against the raw values after all
// field rules passed.
func (r *Record) Check(fn func(values map[string]string) *FieldError) *Record {
	r.checks = append(r.checks, fn)
	return r
}

// Validate runs every rule against its named value. All failures are
// collected rather than stopping at the first one.
func (r *Record) Validate(values map[string]string) (map[string]string, FieldErrors) {
	var errs FieldErrors
	normalized := make(map[string]string, len(values))
	for _, rule := range r.rules {
		out, ferr := rule.Apply(values[rule.Field])
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		normalized[rule.Field] = out
	}
	if len(errs) == 0 {
		for _, check := range r.checks {
			if ferr := check(values); ferr != nil {
				errs = append(errs, *ferr)
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}
