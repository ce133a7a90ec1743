package models

// IrelandRegistration holds the registration identifiers available to Irish
// entities. All numbers are optional; format checks live in
// internal/entity/regnumber.
type IrelandRegistration struct {
	CRONumber          *string `json:"ie_cro_number,omitempty"`
	CharityCHY         *string `json:"ie_charity_chy,omitempty"`
	CharityRCN         *string `json:"ie_charity_rcn,omitempty"`
	ApprovedSportsBody bool    `json:"ie_approved_sports_body"`
}

// UKRegistration holds the registration identifiers available to UK
// entities, one charity number per home-nation regulator.
type UKRegistration struct {
	CompanyNumber          *string `json:"uk_company_number,omitempty"`
	CharityEnglandWales    *string `json:"uk_charity_england_wales,omitempty"`
	CharityScotland        *string `json:"uk_charity_scotland,omitempty"`
	CharityNorthernIreland *string `json:"uk_charity_northern_ireland,omitempty"`
	CASCRegistered         bool    `json:"uk_casc_registered"`
}

// RegistrationDetails is a tagged union over the two jurisdiction variants.
//
// Invariants:
//   - Exactly one variant is populated, selected by the entity's
//     Jurisdiction field. The variant is never inferred from which
//     sub-fields happen to be set.
//   - Switching Jurisdiction discards the other variant's values.
type RegistrationDetails struct {
	Ireland *IrelandRegistration `json:"ireland,omitempty"`
	UK      *UKRegistration      `json:"uk,omitempty"`
}

// NewRegistrationDetails returns an empty registration record with the
// variant matching the jurisdiction initialized.
func NewRegistrationDetails(j Jurisdiction) RegistrationDetails {
	var r RegistrationDetails
	r.Reset(j)
	return r
}

// Reset keeps only the variant matching the jurisdiction, initializing it
// empty when absent and dropping the other variant's values entirely.
func (r *RegistrationDetails) Reset(j Jurisdiction) {
	switch j {
	case JurisdictionIreland:
		if r.Ireland == nil {
			r.Ireland = &IrelandRegistration{}
		}
		r.UK = nil
	case JurisdictionUnitedKingdom:
		if r.UK == nil {
			r.UK = &UKRegistration{}
		}
		r.Ireland = nil
	}
}

// HasAnyNumber reports whether at least one registration number is present
// in the active variant. Used by the completeness scorer.
func (r RegistrationDetails) HasAnyNumber() bool {
	if r.Ireland != nil {
		return isSet(r.Ireland.CRONumber) || isSet(r.Ireland.CharityCHY) || isSet(r.Ireland.CharityRCN)
	}
	if r.UK != nil {
		return isSet(r.UK.CompanyNumber) || isSet(r.UK.CharityEnglandWales) ||
			isSet(r.UK.CharityScotland) || isSet(r.UK.CharityNorthernIreland)
	}
	return false
}

func (r RegistrationDetails) clone() RegistrationDetails {
	out := RegistrationDetails{}
	if r.Ireland != nil {
		ie := *r.Ireland
		ie.CRONumber = cloneString(r.Ireland.CRONumber)
		ie.CharityCHY = cloneString(r.Ireland.CharityCHY)
		ie.CharityRCN = cloneString(r.Ireland.CharityRCN)
		out.Ireland = &ie
	}
	if r.UK != nil {
		uk := *r.UK
		uk.CompanyNumber = cloneString(r.UK.CompanyNumber)
		uk.CharityEnglandWales = cloneString(r.UK.CharityEnglandWales)
		uk.CharityScotland = cloneString(r.UK.CharityScotland)
		uk.CharityNorthernIreland = cloneString(r.UK.CharityNorthernIreland)
		out.UK = &uk
	}
	return out
}

func isSet(s *string) bool {
	return s != nil && *s != ""
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
