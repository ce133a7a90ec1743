package models

import (
	"fmt"
	"strings"
	"time"

	"clubraise/internal/entity/regnumber"
)

// Step identifies one page of the entity setup wizard.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepAddress
	StepLegalStructure
	StepRegistration
)

const minFoundedYear = 1800

// ValidationResult is the structured outcome of step validation. Errors are
// ordered, human-readable messages; they are guidance for the caller, never
// surfaced as faults.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks the given wizard steps against the required-field rules.
// With no steps it validates the whole form, as done at final submission.
// The founded-year range check is cross-cutting and reported regardless of
// which step is requested.
func (f *EntityForm) Validate(now time.Time, steps ...Step) ValidationResult {
	if len(steps) == 0 {
		steps = []Step{StepBasicInfo, StepAddress, StepLegalStructure, StepRegistration}
	}

	var errs []string
	for _, step := range steps {
		switch step {
		case StepBasicInfo:
			errs = append(errs, f.validateBasicInfo()...)
		case StepAddress:
			errs = append(errs, f.validateAddress()...)
		case StepLegalStructure:
			errs = append(errs, f.validateLegalStructure()...)
		case StepRegistration:
			errs = append(errs, f.validateRegistration()...)
		}
	}

	if f.FoundedYear != nil {
		if year := *f.FoundedYear; year < minFoundedYear || year > now.Year() {
			errs = append(errs, fmt.Sprintf("Founded year must be between %d and %d", minFoundedYear, now.Year()))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateAll validates every step, as done at final submission.
func (f *EntityForm) ValidateAll(now time.Time) ValidationResult {
	return f.Validate(now)
}

func (f *EntityForm) validateBasicInfo() []string {
	if f.LegalName == nil || strings.TrimSpace(*f.LegalName) == "" {
		return []string{"Legal name is required"}
	}
	return nil
}

func (f *EntityForm) validateAddress() []string {
	var errs []string
	if f.AddressLine1 == nil || strings.TrimSpace(*f.AddressLine1) == "" {
		errs = append(errs, "Address line 1 is required")
	}
	if f.City == nil || strings.TrimSpace(*f.City) == "" {
		errs = append(errs, "City is required")
	}
	if f.PostalCode == nil || strings.TrimSpace(*f.PostalCode) == "" {
		errs = append(errs, "Postal code is required")
	}
	if f.Jurisdiction == nil || !f.Jurisdiction.Valid() {
		errs = append(errs, "Jurisdiction is required")
	}
	return errs
}

func (f *EntityForm) validateLegalStructure() []string {
	if f.LegalStructure == nil || !f.LegalStructure.Valid() {
		return []string{"Legal structure is required"}
	}
	return nil
}

// validateRegistration has no hard requirements: every registration number
// is optional. Present values are individually format-checked.
func (f *EntityForm) validateRegistration() []string {
	var errs []string
	check := func(tag string, value *string, label string) {
		if value == nil || *value == "" {
			return
		}
		res, err := regnumber.Check(tag, *value)
		if err != nil || !res.Valid {
			errs = append(errs, fmt.Sprintf("%s is not a valid %s", *value, label))
		}
	}
	if f.Ireland != nil {
		check(regnumber.FieldIECRONumber, f.Ireland.CRONumber, "CRO company number")
		check(regnumber.FieldIECharityCHY, f.Ireland.CharityCHY, "CHY charity number")
		check(regnumber.FieldIECharityRCN, f.Ireland.CharityRCN, "RCN charity number")
	}
	if f.UK != nil {
		check(regnumber.FieldUKCompanyNumber, f.UK.CompanyNumber, "Companies House number")
		check(regnumber.FieldUKCharityEnglandWales, f.UK.CharityEnglandWales, "England & Wales charity number")
		check(regnumber.FieldUKCharityScotland, f.UK.CharityScotland, "Scottish charity number")
		check(regnumber.FieldUKCharityNorthernIreland, f.UK.CharityNorthernIreland, "Northern Ireland charity number")
	}
	return errs
}
