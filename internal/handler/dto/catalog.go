// Package dto provides Data Transfer Objects for API responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coachhub/catalog/internal/model"
)

// CreditPackageItem is a credit package as listed.
type CreditPackageItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	CreditAmount int         `json:"credit_amount"`
	Price        json.Number `json:"price"`
}

// CreditPackageResponse is a credit package as created.
type CreditPackageResponse struct {
	CreditPackageItem
	CreatedAt time.Time `json:"createdAt"`
}

// SkillItem is a skill as listed.
type SkillItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SkillResponse is a skill as created.
type SkillResponse struct {
	SkillItem
	CreatedAt time.Time `json:"createdAt"`
}

// price renders a decimal as a bare JSON number ("100", "12.5").
func price(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ToCreditPackageItem converts a model.CreditPackage to its list form.
func ToCreditPackageItem(pkg *model.CreditPackage) CreditPackageItem {
	return CreditPackageItem{
		ID:           pkg.ID,
		Name:         pkg.Name,
		CreditAmount: pkg.CreditAmount,
		Price:        price(pkg.Price),
	}
}

// ToCreditPackageResponse converts a created model.CreditPackage.
func ToCreditPackageResponse(pkg *model.CreditPackage) CreditPackageResponse {
	return CreditPackageResponse{
		CreditPackageItem: ToCreditPackageItem(pkg),
		CreatedAt:         pkg.CreatedAt,
	}
}

// ToCreditPackageList converts packages, returning an empty slice, never nil.
func ToCreditPackageList(packages []*model.CreditPackage) []CreditPackageItem {
	items := make([]CreditPackageItem, len(packages))
	for i, pkg := range packages {
		items[i] = ToCreditPackageItem(pkg)
	}
	return items
}

// ToSkillResponse converts a created model.Skill.
func ToSkillResponse(skill *model.Skill) SkillResponse {
	return SkillResponse{
		SkillItem: SkillItem{ID: skill.ID, Name: skill.Name},
		CreatedAt: skill.CreatedAt,
	}
}

// ToSkillList converts skills, returning an empty slice, never nil.
func ToSkillList(skills []*model.Skill) []SkillItem {
	items := make([]SkillItem, len(skills))
	for i, s := range skills {
		items[i] = SkillItem{ID: s.ID, Name: s.Name}
	}
	return items
}
