package models

import (
	"time"

	id "clubraise/pkg/domain"
)

// Address is the entity's full postal address. Jurisdiction lives on the
// EntityDetails record itself since it also discriminates the registration
// variant.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	County     string `json:"county,omitempty"`
	PostalCode string `json:"postal_code"`
}

// EntityDetails is the persisted record of an organization's declared legal
// details.
//
// Invariants:
//   - LegalName is non-empty
//   - FoundedYear, when present, lies in [1800, current year]
//   - Registration holds exactly the variant matching Jurisdiction
//   - The record is owned by one organization and mutated only through the
//     entity setup service's create/update/verify/reject operations
//   - Once the organization is verified the record is read-only to the
//     organization; changes require administrative support
type EntityDetails struct {
	ID             id.EntityID         `json:"id"`
	OrgID          id.OrgID            `json:"org_id"`
	LegalName      string              `json:"legal_name"`
	TradingNames   []string            `json:"trading_names,omitempty"`
	Description    string              `json:"description,omitempty"`
	FoundedYear    *int                `json:"founded_year,omitempty"`
	Address        Address             `json:"address"`
	Jurisdiction   Jurisdiction        `json:"jurisdiction"`
	LegalStructure LegalStructure      `json:"legal_structure"`
	Registration   RegistrationDetails `json:"registration"`

	RegistrationVerified bool       `json:"registration_verified"`
	VerificationNotes    string     `json:"verification_notes,omitempty"`
	VerifiedAt           *time.Time `json:"verified_at,omitempty"`
	VerifiedBy           string     `json:"verified_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFullAddress reports whether the required address fields are all
// present. Line 2 and county are optional everywhere.
func (d *EntityDetails) HasFullAddress() bool {
	return d.Address.Line1 != "" && d.Address.City != "" && d.Address.PostalCode != ""
}

// Clone returns a deep copy so stores can hand out records without aliasing
// their internal state.
func (d *EntityDetails) Clone() *EntityDetails {
	out := *d
	out.TradingNames = append([]string(nil), d.TradingNames...)
	if d.FoundedYear != nil {
		y := *d.FoundedYear
		out.FoundedYear = &y
	}
	if d.VerifiedAt != nil {
		t := *d.VerifiedAt
		out.VerifiedAt = &t
	}
	out.Registration = d.Registration.clone()
	return &out
}
