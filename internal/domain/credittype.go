package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreditType is one canonical credit-type tag recognized by a licensing or
// certifying body, e.g. AMA PRA Category 1.
type CreditType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Canonical tag ids. The normalizer's mapping table and the reconciler's
// matching semantics both resolve to these values.
const (
	CreditTypeAMACat1        = "ama_cat1"
	CreditTypeAMACat2        = "ama_cat2"
	CreditTypeAOA1A          = "aoa_1a"
	CreditTypeAOA1B          = "aoa_1b"
	CreditTypeMOC            = "moc"
	CreditTypeSelfAssessment = "self_assessment"
	CreditTypeEthics         = "ethics"
	CreditTypePainMgmt       = "pain_mgmt"
	CreditTypeAANPContact    = "aanp_contact"
	CreditTypeAAPACat1       = "aapa_cat1"
	CreditTypePharmacology   = "pharmacology"
	CreditTypeANCCContact    = "ancc_contact"
	CreditTypeCNE            = "cne"
	CreditTypeSpecialty      = "specialty"
	CreditTypeCultural       = "cultural"
)

// DefaultCreditType is assigned when extraction cannot map the detected
// credit-type text to a known tag. The original text is preserved alongside
// for user review.
const DefaultCreditType = CreditTypeAMACat1

// creditTypeCatalog is the fixed profession-keyed taxonomy of credit types.
var creditTypeCatalog = map[Profession][]CreditType{
	ProfessionPhysician: {
		{ID: CreditTypeAMACat1, Name: "AMA PRA Category 1", Description: "Gold standard for physician CME"},
		{ID: CreditTypeAMACat2, Name: "AMA PRA Category 2", Description: "Self-reported educational activities"},
		{ID: CreditTypeAOA1A, Name: "AOA Category 1-A", Description: "Osteopathic medical teaching"},
		{ID: CreditTypeAOA1B, Name: "AOA Category 1-B", Description: "Board certification activities"},
		{ID: CreditTypeMOC, Name: "MOC/MOL", Description: "Maintenance of Certification/Licensure"},
		{ID: CreditTypeSelfAssessment, Name: "Self-Assessment", Description: "Knowledge self-assessment"},
		{ID: CreditTypeEthics, Name: "Medical Ethics", Description: "Ethics credits"},
		{ID: CreditTypePainMgmt, Name: "Pain Management", Description: "Pain management/opioid prescribing"},
	},
	ProfessionNPPA: {
		{ID: CreditTypeAANPContact, Name: "AANP Contact Hours", Description: "NP contact hours"},
		{ID: CreditTypeAAPACat1, Name: "AAPA Category 1", Description: "PA Category 1 credits"},
		{ID: CreditTypeAMACat1, Name: "AMA PRA Category 1", Description: "Accepted for NP/PA"},
		{ID: CreditTypePharmacology, Name: "Pharmacology CE", Description: "Pharmacology continuing education"},
		{ID: CreditTypeANCCContact, Name: "ANCC Contact Hours", Description: "Nursing contact hours"},
		{ID: CreditTypeSelfAssessment, Name: "Self-Assessment", Description: "Knowledge self-assessment"},
	},
	ProfessionNurse: {
		{ID: CreditTypeANCCContact, Name: "ANCC Contact Hours", Description: "Primary nursing CE"},
		{ID: CreditTypeCNE, Name: "CNE Credits", Description: "Continuing nursing education"},
		{ID: CreditTypePharmacology, Name: "Pharmacology CE", Description: "Required for NPs/CNSs"},
		{ID: CreditTypeSpecialty, Name: "Specialty CE", Description: "Specialty-specific education"},
		{ID: CreditTypeEthics, Name: "Nursing Ethics", Description: "Ethics credits"},
		{ID: CreditTypeCultural, Name: "Cultural Competency", Description: "Cultural competency training"},
	},
}

// CreditTypesFor returns the catalog slice for the given profession.
// Unknown or empty professions fall back to the physician set.
func CreditTypesFor(p Profession) []CreditType {
	if types, ok := creditTypeCatalog[p]; ok {
		return types
	}
	return creditTypeCatalog[ProfessionPhysician]
}

// CreditTypeCatalog returns the full profession-keyed taxonomy.
func CreditTypeCatalog() map[Profession][]CreditType {
	return creditTypeCatalog
}

// CustomCreditType is an owner-defined tag extending the fixed taxonomy.
// It is purely a labeling extension; matching treats it like any other tag.
type CustomCreditType struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag returns the tag value under which the custom type participates in
// credit-type sets.
func (c *CustomCreditType) Tag() string {
	return "custom_" + c.ID.String()[:8]
}
