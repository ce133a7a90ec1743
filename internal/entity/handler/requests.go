package handler

import (
	"strings"

	"clubraise/internal/entity/models"
	dErrors "clubraise/pkg/domain-errors"
)

// SetEntityTypeRequest is the body of POST /onboarding/entity-type.
type SetEntityTypeRequest struct {
	Category string `json:"category"`
}

func (r *SetEntityTypeRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return dErrors.NewValidation([]string{"Category is required"})
	}
	return nil
}

// EntityDetailsRequest is the body of POST and PUT /onboarding/entity-details.
// All fields are optional on the wire; required-field enforcement is the
// step validator's job. Registration fields for both jurisdictions may
// coexist in a payload; the jurisdiction discriminant decides which set is
// applied and the other is dropped.
type EntityDetailsRequest struct {
	LegalName    *string   `json:"legal_name,omitempty"`
	TradingNames *[]string `json:"trading_names,omitempty"`
	Description  *string   `json:"description,omitempty"`
	FoundedYear  *int      `json:"founded_year,omitempty"`

	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	County       *string `json:"county,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`

	LegalStructure *string `json:"legal_structure,omitempty"`

	IECRONumber          *string `json:"ie_cro_number,omitempty"`
	IECharityCHY         *string `json:"ie_charity_chy,omitempty"`
	IECharityRCN         *string `json:"ie_charity_rcn,omitempty"`
	IEApprovedSportsBody *bool   `json:"ie_approved_sports_body,omitempty"`

	UKCompanyNumber          *string `json:"uk_company_number,omitempty"`
	UKCharityEnglandWales    *string `json:"uk_charity_england_wales,omitempty"`
	UKCharityScotland        *string `json:"uk_charity_scotland,omitempty"`
	UKCharityNorthernIreland *string `json:"uk_charity_northern_ireland,omitempty"`
	UKCASCRegistered         *bool   `json:"uk_casc_registered,omitempty"`
}

// Validate rejects values outside the enumerations early so the form layer
// only ever sees well-typed values.
func (r *EntityDetailsRequest) Validate() error {
	var errs []string
	if r.Jurisdiction != nil {
		if _, err := models.ParseJurisdiction(*r.Jurisdiction); err != nil {
			errs = append(errs, "Jurisdiction must be IE or UK")
		}
	}
	if r.LegalStructure != nil {
		if _, err := models.ParseLegalStructure(*r.LegalStructure); err != nil {
			errs = append(errs, "Unknown legal structure")
		}
	}
	if len(errs) > 0 {
		return dErrors.NewValidation(errs)
	}
	return nil
}

// ToForm maps the wire payload onto the wizard form model.
func (r *EntityDetailsRequest) ToForm() *models.EntityForm {
	f := &models.EntityForm{
		LegalName:    r.LegalName,
		TradingNames: r.TradingNames,
		Description:  r.Description,
		FoundedYear:  r.FoundedYear,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		County:       r.County,
		PostalCode:   r.PostalCode,
	}
	if r.Jurisdiction != nil {
		j := models.Jurisdiction(*r.Jurisdiction)
		f.Jurisdiction = &j
	}
	if r.LegalStructure != nil {
		l := models.LegalStructure(*r.LegalStructure)
		f.LegalStructure = &l
	}
	if r.IECRONumber != nil || r.IECharityCHY != nil || r.IECharityRCN != nil || r.IEApprovedSportsBody != nil {
		f.Ireland = &models.IrelandRegistrationForm{
			CRONumber:          r.IECRONumber,
			CharityCHY:         r.IECharityCHY,
			CharityRCN:         r.IECharityRCN,
			ApprovedSportsBody: r.IEApprovedSportsBody,
		}
	}
	if r.UKCompanyNumber != nil || r.UKCharityEnglandWales != nil || r.UKCharityScotland != nil ||
		r.UKCharityNorthernIreland != nil || r.UKCASCRegistered != nil {
		f.UK = &models.UKRegistrationForm{
			CompanyNumber:          r.UKCompanyNumber,
			CharityEnglandWales:    r.UKCharityEnglandWales,
			CharityScotland:        r.UKCharityScotland,
			CharityNorthernIreland: r.UKCharityNorthernIreland,
			CASCRegistered:         r.UKCASCRegistered,
		}
	}
	return f
}

// ReviewRequest is the body of the admin verify/reject/suspend endpoints.
type ReviewRequest struct {
	Notes string `json:"notes"`
}
