// Package regnumber checks jurisdiction-specific registration identifiers
// for syntactic plausibility.
//
// Checks are format-only: a passing number is well-formed, not proven to
// exist in a government registry. Existence is confirmed by a human reviewer
// during verification.
package regnumber

import (
	"regexp"
	"strings"

	dErrors "clubraise/pkg/domain-errors"
)

// Field tags name the registration fields across both jurisdictions. The
// wire payloads use the same tags as JSON keys.
const (
	FieldIECRONumber              = "ie_cro_number"
	FieldIECharityCHY             = "ie_charity_chy"
	FieldIECharityRCN             = "ie_charity_rcn"
	FieldUKCompanyNumber          = "uk_company_number"
	FieldUKCharityEnglandWales    = "uk_charity_england_wales"
	FieldUKCharityScotland        = "uk_charity_scotland"
	FieldUKCharityNorthernIreland = "uk_charity_northern_ireland"
)

// Result carries the normalized field tag alongside the verdict so callers
// that accept loosely-cased tags can report against the canonical name.
type Result struct {
	Tag   string
	Valid bool
}

var patterns = map[string]*regexp.Regexp{
	// CRO company numbers are numeric, historically 4 digits, currently 6.
	FieldIECRONumber: regexp.MustCompile(`^[0-9]{4,7}$`),
	// Legacy Revenue charity numbers, with or without the CHY prefix.
	FieldIECharityCHY: regexp.MustCompile(`^(CHY)?[0-9]{1,5}$`),
	// Charities Regulator numbers are 8 digits starting 20.
	FieldIECharityRCN: regexp.MustCompile(`^20[0-9]{6}$`),
	// Companies House: 8 digits, or a two-letter country prefix + 6 digits.
	FieldUKCompanyNumber: regexp.MustCompile(`^([0-9]{8}|[A-Z]{2}[0-9]{6})$`),
	// Charity Commission numbers, optionally with a linked-charity suffix.
	FieldUKCharityEnglandWales: regexp.MustCompile(`^[0-9]{6,7}(-[0-9]{1,3})?$`),
	// OSCR numbers are SC followed by 6 digits.
	FieldUKCharityScotland: regexp.MustCompile(`^SC[0-9]{6}$`),
	// CCNI numbers, with or without the NIC prefix.
	FieldUKCharityNorthernIreland: regexp.MustCompile(`^(NIC)?[0-9]{5,6}$`),
}

var tagSeparators = strings.NewReplacer("-", "_", " ", "_", ".", "_")

// NormalizeTag maps a loosely-formatted field tag (mixed case, dashes,
// camelCase) onto its canonical snake_case form. The result is only
// meaningful if Check accepts it.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = tagSeparators.Replace(tag)
	if tag == strings.ToUpper(tag) {
		// No camelCase humps to split, e.g. "IE_CRO_NUMBER".
		return strings.ToLower(tag)
	}
	var b strings.Builder
	for i, r := range tag {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && tag[i-1] != '_' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Check reports whether value is syntactically plausible for the given
// registration field. Empty values are always valid since every
// registration number is optional. Unknown tags are an error.
func Check(tag, value string) (Result, error) {
	normalized := NormalizeTag(tag)
	pattern, ok := patterns[normalized]
	if !ok {
		return Result{Tag: normalized}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown registration field %q", tag)
	}

	value = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))
	if value == "" {
		return Result{Tag: normalized, Valid: true}, nil
	}
	return Result{Tag: normalized, Valid: pattern.MatchString(value)}, nil
}
