// Package model defines domain entities for the application.
package model

// Kind identifies one of the catalogs served by the API.
type Kind string

const (
	KindCreditPackage Kind = "credit_package"
	KindSkill         Kind = "skill"
)

// Kinds lists every catalog kind.
var Kinds = []Kind{KindCreditPackage, KindSkill}

// Table returns the relational table backing the catalog.
func (k Kind) Table() string {
	switch k {
	case KindCreditPackage:
		return "CREDIT_PACKAGE"
	case KindSkill:
		return "SKILL"
	default:
		return ""
	}
}
