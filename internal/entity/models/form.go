package models

import (
	"time"

	id "clubraise/pkg/domain"
	strutil "clubraise/pkg/platform/strings"
)

// IrelandRegistrationForm is the wizard-side shape of the Irish
// registration section. Every field is a pointer so partial updates leave
// untouched sub-fields alone.
type IrelandRegistrationForm struct {
	CRONumber          *string
	CharityCHY         *string
	CharityRCN         *string
	ApprovedSportsBody *bool
}

// UKRegistrationForm is the wizard-side shape of the UK registration
// section.
type UKRegistrationForm struct {
	CompanyNumber          *string
	CharityEnglandWales    *string
	CharityScotland        *string
	CharityNorthernIreland *string
	CASCRegistered         *bool
}

// EntityForm is the in-progress wizard state for an organization's entity
// details, split into the four wizard sections. Every field is a pointer so
// a partial update only touches what the caller actually sent; unset fields
// never clobber previously stored values.
//
// Both registration sections may be populated on the wire, but only the one
// matching the Jurisdiction discriminant is ever applied; the other is
// ignored and dropped. The variant is never inferred from which sub-fields
// happen to be set.
type EntityForm struct {
	// Basic info
	LegalName    *string
	TradingNames *[]string
	Description  *string
	FoundedYear  *int

	// Address
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	County       *string
	PostalCode   *string
	Jurisdiction *Jurisdiction

	// Legal structure
	LegalStructure *LegalStructure

	// Registration
	Ireland *IrelandRegistrationForm
	UK      *UKRegistrationForm
}

// FormFromDetails reconstructs a fully-populated form from a persisted
// record. The registration variant is chosen from the record's Jurisdiction
// field; values belonging to the other jurisdiction are never carried over.
func FormFromDetails(d *EntityDetails) *EntityForm {
	c := d.Clone()
	f := &EntityForm{
		LegalName:      &c.LegalName,
		TradingNames:   &c.TradingNames,
		Description:    &c.Description,
		FoundedYear:    c.FoundedYear,
		AddressLine1:   &c.Address.Line1,
		AddressLine2:   &c.Address.Line2,
		City:           &c.Address.City,
		County:         &c.Address.County,
		PostalCode:     &c.Address.PostalCode,
		Jurisdiction:   &c.Jurisdiction,
		LegalStructure: &c.LegalStructure,
	}
	switch c.Jurisdiction {
	case JurisdictionIreland:
		ie := c.Registration.Ireland
		if ie == nil {
			ie = &IrelandRegistration{}
		}
		f.Ireland = &IrelandRegistrationForm{
			CRONumber:          ie.CRONumber,
			CharityCHY:         ie.CharityCHY,
			CharityRCN:         ie.CharityRCN,
			ApprovedSportsBody: &ie.ApprovedSportsBody,
		}
	case JurisdictionUnitedKingdom:
		uk := c.Registration.UK
		if uk == nil {
			uk = &UKRegistration{}
		}
		f.UK = &UKRegistrationForm{
			CompanyNumber:          uk.CompanyNumber,
			CharityEnglandWales:    uk.CharityEnglandWales,
			CharityScotland:        uk.CharityScotland,
			CharityNorthernIreland: uk.CharityNorthernIreland,
			CASCRegistered:         &uk.CASCRegistered,
		}
	}
	return f
}

// ToDetails materializes a new persisted record from the form. The caller
// is expected to have run ValidateAll first; missing required fields come
// out as zero values.
func (f *EntityForm) ToDetails(entityID id.EntityID, orgID id.OrgID, now time.Time) *EntityDetails {
	d := &EntityDetails{
		ID:        entityID,
		OrgID:     orgID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.ApplyTo(d, now)
	return d
}

// ApplyTo merges the form's set fields into the record. A jurisdiction
// switch discards the previous variant's registration values entirely, and
// only the registration section matching the record's jurisdiction is
// applied.
func (f *EntityForm) ApplyTo(d *EntityDetails, now time.Time) {
	if f.LegalName != nil {
		d.LegalName = *f.LegalName
	}
	if f.TradingNames != nil {
		d.TradingNames = strutil.DedupeAndTrim(*f.TradingNames)
	}
	if f.Description != nil {
		d.Description = *f.Description
	}
	if f.FoundedYear != nil {
		y := *f.FoundedYear
		d.FoundedYear = &y
	}
	if f.AddressLine1 != nil {
		d.Address.Line1 = *f.AddressLine1
	}
	if f.AddressLine2 != nil {
		d.Address.Line2 = *f.AddressLine2
	}
	if f.City != nil {
		d.Address.City = *f.City
	}
	if f.County != nil {
		d.Address.County = *f.County
	}
	if f.PostalCode != nil {
		d.Address.PostalCode = *f.PostalCode
	}
	if f.Jurisdiction != nil && *f.Jurisdiction != d.Jurisdiction {
		d.Jurisdiction = *f.Jurisdiction
		d.Registration = NewRegistrationDetails(d.Jurisdiction)
	}
	if f.LegalStructure != nil {
		d.LegalStructure = *f.LegalStructure
	}

	d.Registration.Reset(d.Jurisdiction)
	switch d.Jurisdiction {
	case JurisdictionIreland:
		if f.Ireland != nil {
			applyString(&d.Registration.Ireland.CRONumber, f.Ireland.CRONumber)
			applyString(&d.Registration.Ireland.CharityCHY, f.Ireland.CharityCHY)
			applyString(&d.Registration.Ireland.CharityRCN, f.Ireland.CharityRCN)
			if f.Ireland.ApprovedSportsBody != nil {
				d.Registration.Ireland.ApprovedSportsBody = *f.Ireland.ApprovedSportsBody
			}
		}
	case JurisdictionUnitedKingdom:
		if f.UK != nil {
			applyString(&d.Registration.UK.CompanyNumber, f.UK.CompanyNumber)
			applyString(&d.Registration.UK.CharityEnglandWales, f.UK.CharityEnglandWales)
			applyString(&d.Registration.UK.CharityScotland, f.UK.CharityScotland)
			applyString(&d.Registration.UK.CharityNorthernIreland, f.UK.CharityNorthernIreland)
			if f.UK.CASCRegistered != nil {
				d.Registration.UK.CASCRegistered = *f.UK.CASCRegistered
			}
		}
	}
	d.UpdatedAt = now
}

func applyString(dst **string, src *string) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}
