package gst

import (
	"regexp"
	"strings"

	"gstbill/internal/domain"
)

// stateCodePattern matches a two-digit numeric GST state code.
var stateCodePattern = regexp.MustCompile(`^[0-9]{2}$`)

// normalizeJurisdiction canonicalizes a state identifier for comparison.
// Two-digit state codes are authoritative and compared verbatim; anything else
// is treated as a free-text state name, trimmed and case-folded.
func normalizeJurisdiction(s string) string {
	trimmed := strings.TrimSpace(s)
	if stateCodePattern.MatchString(trimmed) {
		return trimmed
	}
	return strings.ToLower(trimmed)
}

// ResolvePlaceOfSupply classifies a transaction between the organization's
// state and the vendor's/customer's state as intrastate or interstate.
//
// A missing jurisdiction on either side resolves to interstate: guessing
// same-state risks collecting CGST/SGST where IGST was due, so unknown
// counterparties are always taxed as cross-state. A state code and a state
// name are never equal, even when they denote the same state; callers must
// supply both sides in one representation.
func ResolvePlaceOfSupply(org, counterparty string) domain.PlaceOfSupply {
	if org == "" || counterparty == "" {
		return domain.PlaceOfSupplyInterstate
	}
	if normalizeJurisdiction(org) == normalizeJurisdiction(counterparty) {
		return domain.PlaceOfSupplyIntrastate
	}
	return domain.PlaceOfSupplyInterstate
}
