package extraction

import (
	"strings"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// creditTypeMapping pairs a lower-cased substring key with the canonical tag
// it resolves to.
type creditTypeMapping struct {
	key string
	tag string
}

// creditTypeMappings is evaluated top to bottom; the first key contained in
// the detected text wins. The order is a priority order, NOT alphabetical:
// broader keys like "category 1" sit below their more specific synonyms
// ("ama pra category 1", "aoa category 1-a") so that ambiguous substrings
// never match prematurely. Keep it a slice; a map would lose the ordering.
var creditTypeMappings = []creditTypeMapping{
	// AMA
	{"ama pra category 1", domain.CreditTypeAMACat1},
	{"ama category 1", domain.CreditTypeAMACat1},
	{"category 1 credit", domain.CreditTypeAMACat1},
	{"ama pra category 2", domain.CreditTypeAMACat2},
	// AOA, before the bare "category 1"/"category 2" keys
	{"aoa category 1-a", domain.CreditTypeAOA1A},
	{"aoa 1a", domain.CreditTypeAOA1A},
	{"aoa category 1-b", domain.CreditTypeAOA1B},
	{"aoa 1b", domain.CreditTypeAOA1B},
	// NP/PA
	{"aanp contact", domain.CreditTypeAANPContact},
	{"aanp", domain.CreditTypeAANPContact},
	{"aapa category 1", domain.CreditTypeAAPACat1},
	{"aapa", domain.CreditTypeAAPACat1},
	{"ancc contact", domain.CreditTypeANCCContact},
	{"ancc", domain.CreditTypeANCCContact},
	{"contact hours", domain.CreditTypeANCCContact},
	// Bare category keys, only after every specific synonym above
	{"category 1", domain.CreditTypeAMACat1},
	{"category 2", domain.CreditTypeAMACat2},
	// Other
	{"pharmacology", domain.CreditTypePharmacology},
	{"pharmacotherapeutics", domain.CreditTypePharmacology},
	{"moc", domain.CreditTypeMOC},
	{"maintenance of certification", domain.CreditTypeMOC},
	{"self-assessment", domain.CreditTypeSelfAssessment},
	{"self assessment", domain.CreditTypeSelfAssessment},
	{"ethics", domain.CreditTypeEthics},
	{"pain management", domain.CreditTypePainMgmt},
	{"opioid", domain.CreditTypePainMgmt},
	{"cne", domain.CreditTypeCNE},
	{"continuing nursing", domain.CreditTypeCNE},
}

// resolveCreditType maps free-form credit-type text to a canonical tag.
// Returns the tag and true on a known synonym; the default tag and false
// when nothing matches (the caller preserves the original text for review).
func resolveCreditType(text string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return domain.DefaultCreditType, false
	}

	for _, m := range creditTypeMappings {
		if strings.Contains(normalized, m.key) {
			return m.tag, true
		}
	}

	return domain.DefaultCreditType, false
}
