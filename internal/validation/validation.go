// Package validation classifies raw request fields before they reach the
// catalog services.
package validation

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Payload is a request body decoded as a JSON object.
type Payload map[string]any

// Field names accepted in create requests.
const (
	FieldName         = "name"
	FieldCreditAmount = "credit_amount"
	FieldPrice        = "price"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsUndefined reports whether field is absent from the payload.
// A field explicitly set to null is present.
func IsUndefined(p Payload, field string) bool {
	_, ok := p[field]
	return !ok
}

// IsNotValidString reports whether v is not a string or is blank once trimmed.
func IsNotValidString(v any) bool {
	s, ok := v.(string)
	return !ok || len(strings.TrimSpace(s)) == 0
}

// IsNotValidInteger reports whether v is not a whole, non-negative JSON number.
func IsNotValidInteger(v any) bool {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	return f < 0 || f != math.Trunc(f)
}

// CreditPackageFields holds create input once the predicates have passed.
// The tags mirror the column types so oversized values are rejected as
// input errors instead of surfacing as store failures.
type CreditPackageFields struct {
	Name         string  `validate:"max=50"`
	CreditAmount float64 `validate:"lte=2147483647"`
	Price        float64 `validate:"lt=100000000"`
}

// SkillFields holds skill create input once the predicates have passed.
type SkillFields struct {
	Name string `validate:"max=50"`
}

// CreditPackage checks a credit package payload in field order and returns
// the typed fields. ok is false on the first failing field.
func CreditPackage(p Payload) (fields CreditPackageFields, ok bool) {
	if IsUndefined(p, FieldName) || IsNotValidString(p[FieldName]) ||
		IsUndefined(p, FieldCreditAmount) || IsNotValidInteger(p[FieldCreditAmount]) ||
		IsUndefined(p, FieldPrice) || IsNotValidInteger(p[FieldPrice]) {
		return fields, false
	}

	fields = CreditPackageFields{
		Name:         p[FieldName].(string),
		CreditAmount: p[FieldCreditAmount].(float64),
		Price:        p[FieldPrice].(float64),
	}
	if err := validate.Struct(fields); err != nil {
		return CreditPackageFields{}, false
	}
	return fields, true
}

// Skill checks a skill payload and returns the typed fields.
func Skill(p Payload) (fields SkillFields, ok bool) {
	if IsUndefined(p, FieldName) || IsNotValidString(p[FieldName]) {
		return fields, false
	}

	fields = SkillFields{Name: p[FieldName].(string)}
	if err := validate.Struct(fields); err != nil {
		return SkillFields{}, false
	}
	return fields, true
}

// IsNotValidID reports whether a path identifier is missing or blank.
// The identifier format itself is left to the store.
func IsNotValidID(id string) bool {
	return IsNotValidString(id)
}
