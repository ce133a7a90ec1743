package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "clubraise/pkg/domain"
)

func boolPtr(b bool) *bool { return &b }

var formNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func irishDetails() *EntityDetails {
	f := fullForm()
	f.TradingNames = &[]string{"Ballyer GAA"}
	f.Ireland = &IrelandRegistrationForm{
		CRONumber:          strPtr("123456"),
		CharityCHY:         strPtr("CHY12345"),
		ApprovedSportsBody: boolPtr(true),
	}
	return f.ToDetails(id.EntityID(uuid.New()), id.OrgID(uuid.New()), formNow)
}

func TestToDetails_PopulatesRecord(t *testing.T) {
	d := irishDetails()

	assert.Equal(t, "Ballyfermot Hurling Club", d.LegalName)
	assert.Equal(t, []string{"Ballyer GAA"}, d.TradingNames)
	assert.Equal(t, JurisdictionIreland, d.Jurisdiction)
	assert.Equal(t, StructureUnincorporatedAssociation, d.LegalStructure)
	require.NotNil(t, d.Registration.Ireland)
	assert.Nil(t, d.Registration.UK)
	require.NotNil(t, d.Registration.Ireland.CRONumber)
	assert.Equal(t, "123456", *d.Registration.Ireland.CRONumber)
	assert.True(t, d.Registration.Ireland.ApprovedSportsBody)
}

func TestFormFromDetails_RoundTrip(t *testing.T) {
	d := irishDetails()

	f := FormFromDetails(d)
	rebuilt := f.ToDetails(d.ID, d.OrgID, formNow)

	assert.Equal(t, d.LegalName, rebuilt.LegalName)
	assert.Equal(t, d.TradingNames, rebuilt.TradingNames)
	assert.Equal(t, d.Address, rebuilt.Address)
	assert.Equal(t, d.Jurisdiction, rebuilt.Jurisdiction)
	assert.Equal(t, d.LegalStructure, rebuilt.LegalStructure)
	assert.Equal(t, d.Registration, rebuilt.Registration)
}

// A Scottish charity number stored under the UK variant survives the trip
// through the form and never leaks into the Ireland variant.
func TestFormFromDetails_UKRoundTripKeepsScottishCharityNumber(t *testing.T) {
	uk := JurisdictionUnitedKingdom
	f := fullForm()
	f.Jurisdiction = &uk
	f.UK = &UKRegistrationForm{CharityScotland: strPtr("SC012345")}
	d := f.ToDetails(id.EntityID(uuid.New()), id.OrgID(uuid.New()), formNow)

	rebuilt := FormFromDetails(d).ToDetails(d.ID, d.OrgID, formNow)

	assert.Equal(t, JurisdictionUnitedKingdom, rebuilt.Jurisdiction)
	require.NotNil(t, rebuilt.Registration.UK)
	require.NotNil(t, rebuilt.Registration.UK.CharityScotland)
	assert.Equal(t, "SC012345", *rebuilt.Registration.UK.CharityScotland)
	assert.Nil(t, rebuilt.Registration.UK.CompanyNumber)
	assert.Nil(t, rebuilt.Registration.Ireland)
}

// A partial update touching one registration field must not clobber the
// rest of the stored section.
func TestApplyTo_PartialRegistrationUpdateMergesFields(t *testing.T) {
	d := irishDetails()

	update := &EntityForm{
		Ireland: &IrelandRegistrationForm{CharityRCN: strPtr("20123456")},
	}
	update.ApplyTo(d, formNow)

	require.NotNil(t, d.Registration.Ireland.CRONumber)
	assert.Equal(t, "123456", *d.Registration.Ireland.CRONumber)
	require.NotNil(t, d.Registration.Ireland.CharityRCN)
	assert.Equal(t, "20123456", *d.Registration.Ireland.CharityRCN)
	assert.True(t, d.Registration.Ireland.ApprovedSportsBody)
}

func TestApplyTo_UnsetFieldsLeaveRecordAlone(t *testing.T) {
	d := irishDetails()

	update := &EntityForm{Description: strPtr("Founded on the northside.")}
	update.ApplyTo(d, formNow)

	assert.Equal(t, "Ballyfermot Hurling Club", d.LegalName)
	assert.Equal(t, "Founded on the northside.", d.Description)
	assert.Equal(t, "12 Main Street", d.Address.Line1)
}

// Switching jurisdiction drops the old variant's values entirely, even the
// ones not overwritten by the update.
func TestApplyTo_JurisdictionSwitchDropsOtherVariant(t *testing.T) {
	d := irishDetails()

	uk := JurisdictionUnitedKingdom
	update := &EntityForm{
		Jurisdiction: &uk,
		UK:           &UKRegistrationForm{CompanyNumber: strPtr("12345678")},
	}
	update.ApplyTo(d, formNow)

	assert.Equal(t, JurisdictionUnitedKingdom, d.Jurisdiction)
	assert.Nil(t, d.Registration.Ireland)
	require.NotNil(t, d.Registration.UK)
	require.NotNil(t, d.Registration.UK.CompanyNumber)
	assert.Equal(t, "12345678", *d.Registration.UK.CompanyNumber)
}

// Switching back does not resurrect previously stored values.
func TestApplyTo_SwitchBackStartsEmpty(t *testing.T) {
	d := irishDetails()

	uk := JurisdictionUnitedKingdom
	(&EntityForm{Jurisdiction: &uk}).ApplyTo(d, formNow)
	ie := JurisdictionIreland
	(&EntityForm{Jurisdiction: &ie}).ApplyTo(d, formNow)

	require.NotNil(t, d.Registration.Ireland)
	assert.Nil(t, d.Registration.Ireland.CRONumber)
	assert.False(t, d.Registration.Ireland.ApprovedSportsBody)
}

// Registration fields for the wrong jurisdiction are ignored, not stored.
func TestApplyTo_MismatchedRegistrationSectionIgnored(t *testing.T) {
	d := irishDetails()

	update := &EntityForm{
		UK: &UKRegistrationForm{CompanyNumber: strPtr("12345678")},
	}
	update.ApplyTo(d, formNow)

	assert.Equal(t, JurisdictionIreland, d.Jurisdiction)
	assert.Nil(t, d.Registration.UK)
	assert.Equal(t, "123456", *d.Registration.Ireland.CRONumber)
}

func TestApplyTo_TradingNamesReplacedWholesale(t *testing.T) {
	d := irishDetails()

	update := &EntityForm{TradingNames: &[]string{"Ballyer GAA", "Ballyfermot HC"}}
	update.ApplyTo(d, formNow)
	assert.Equal(t, []string{"Ballyer GAA", "Ballyfermot HC"}, d.TradingNames)

	messy := &EntityForm{TradingNames: &[]string{"  Ballyer GAA ", "Ballyer GAA", "", "Ballyfermot HC"}}
	messy.ApplyTo(d, formNow)
	assert.Equal(t, []string{"Ballyer GAA", "Ballyfermot HC"}, d.TradingNames)

	empty := &EntityForm{TradingNames: &[]string{}}
	empty.ApplyTo(d, formNow)
	assert.Empty(t, d.TradingNames)
}
