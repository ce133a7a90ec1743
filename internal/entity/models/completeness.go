package models

import "math"

// CompletenessItem is one entry of the fixed completeness checklist.
// Optional items are reported for guidance but never counted against the
// percentage.
type CompletenessItem struct {
	Label    string `json:"label"`
	Complete bool   `json:"complete"`
	Optional bool   `json:"optional"`
}

// CompletenessReport scores how much of a stored record is populated. It is
// presence-only: a record can be 100% complete and still fail step
// validation (an out-of-range founded year, say). The scorer never
// re-validates formats.
type CompletenessReport struct {
	Percent int                `json:"percent"`
	Items   []CompletenessItem `json:"items"`
}

// Completeness computes the completeness of a persisted record over the
// fixed checklist: legal name, full address (one item), legal structure,
// and at least one registration number. Registration numbers are optional
// everywhere in the wizard, so they are informational here and do not block
// 100%.
func Completeness(d *EntityDetails) CompletenessReport {
	items := []CompletenessItem{
		{Label: "Legal name", Complete: d.LegalName != ""},
		{Label: "Address", Complete: d.HasFullAddress()},
		{Label: "Legal structure", Complete: d.LegalStructure.Valid()},
		{Label: "Registration number", Complete: d.Registration.HasAnyNumber(), Optional: true},
	}

	required, complete := 0, 0
	for _, item := range items {
		if item.Optional {
			continue
		}
		required++
		if item.Complete {
			complete++
		}
	}

	percent := 0
	if required > 0 {
		percent = int(math.Round(float64(complete) / float64(required) * 100))
	}
	return CompletenessReport{Percent: percent, Items: items}
}
