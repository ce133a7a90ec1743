package models

import (
	dErrors "clubraise/pkg/domain-errors"
)

// Jurisdiction selects the legal/registration regime the entity operates
// under. It is the single discriminant for which registration sub-record
// applies and which address labels the caller should render.
type Jurisdiction string

const (
	JurisdictionIreland       Jurisdiction = "IE"
	JurisdictionUnitedKingdom Jurisdiction = "UK"
)

func (j Jurisdiction) Valid() bool {
	return j == JurisdictionIreland || j == JurisdictionUnitedKingdom
}

// PostalCodeLabel returns the caller-facing name for the postal code field.
func (j Jurisdiction) PostalCodeLabel() string {
	if j == JurisdictionIreland {
		return "Eircode"
	}
	return "Postcode"
}

func ParseJurisdiction(s string) (Jurisdiction, error) {
	j := Jurisdiction(s)
	if !j.Valid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown jurisdiction %q", s)
	}
	return j, nil
}

// LegalStructure is the entity's declared legal form.
type LegalStructure string

const (
	StructureUnincorporatedAssociation LegalStructure = "unincorporated_association"
	StructureCompanyLimitedByGuarantee LegalStructure = "company_limited_by_guarantee"
	StructureCharitableTrust           LegalStructure = "charitable_trust"
	StructureCommunityInterestCompany  LegalStructure = "community_interest_company"
	StructureOther                     LegalStructure = "other"
)

func (l LegalStructure) Valid() bool {
	switch l {
	case StructureUnincorporatedAssociation, StructureCompanyLimitedByGuarantee,
		StructureCharitableTrust, StructureCommunityInterestCompany, StructureOther:
		return true
	}
	return false
}

func ParseLegalStructure(s string) (LegalStructure, error) {
	l := LegalStructure(s)
	if !l.Valid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown legal structure %q", s)
	}
	return l, nil
}
