package regnumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "clubraise/pkg/domain-errors"
)

func TestCheck_Formats(t *testing.T) {
	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{FieldIECRONumber, "123456", true},
		{FieldIECRONumber, "1234", true},
		{FieldIECRONumber, "123", false},
		{FieldIECRONumber, "ABC123", false},

		{FieldIECharityCHY, "CHY12345", true},
		{FieldIECharityCHY, "12345", true},
		{FieldIECharityCHY, "CHY", false},
		{FieldIECharityCHY, "123456", false},

		{FieldIECharityRCN, "20123456", true},
		{FieldIECharityRCN, "19123456", false},
		{FieldIECharityRCN, "2012345", false},

		{FieldUKCompanyNumber, "12345678", true},
		{FieldUKCompanyNumber, "SC123456", true},
		{FieldUKCompanyNumber, "NI123456", true},
		{FieldUKCompanyNumber, "1234567", false},
		{FieldUKCompanyNumber, "S1234567", false},

		{FieldUKCharityEnglandWales, "123456", true},
		{FieldUKCharityEnglandWales, "1234567", true},
		{FieldUKCharityEnglandWales, "1234567-1", true},
		{FieldUKCharityEnglandWales, "12345", false},

		{FieldUKCharityScotland, "SC012345", true},
		{FieldUKCharityScotland, "SC12345", false},
		{FieldUKCharityScotland, "012345", false},

		{FieldUKCharityNorthernIreland, "NIC1012345", false},
		{FieldUKCharityNorthernIreland, "NIC101234", true},
		{FieldUKCharityNorthernIreland, "NIC10123", true},
		{FieldUKCharityNorthernIreland, "101234", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			res, err := Check(tt.tag, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

// Values are normalized before matching: surrounding whitespace, internal
// spaces, and lowercase all pass.
func TestCheck_ValueNormalization(t *testing.T) {
	for _, value := range []string{" 123456 ", "12 34 56"} {
		res, err := Check(FieldIECRONumber, value)
		require.NoError(t, err)
		assert.True(t, res.Valid, "value %q", value)
	}

	res, err := Check(FieldUKCharityScotland, "sc012345")
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestCheck_EmptyValueAlwaysValid(t *testing.T) {
	res, err := Check(FieldUKCompanyNumber, "")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = Check(FieldIECharityRCN, "   ")
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestCheck_UnknownTag(t *testing.T) {
	_, err := Check("us_ein", "12-3456789")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ie_cro_number", "ie_cro_number"},
		{"IE_CRO_NUMBER", "ie_cro_number"},
		{"ie-cro-number", "ie_cro_number"},
		{"ie cro number", "ie_cro_number"},
		{"ieCroNumber", "ie_cro_number"},
		{"ukCharityEnglandWales", "uk_charity_england_wales"},
		{"  uk_company_number ", "uk_company_number"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTag(tt.in), "input %q", tt.in)
	}
}

// The result carries the canonical tag even when the input was loose.
func TestCheck_ResultCarriesNormalizedTag(t *testing.T) {
	res, err := Check("ieCroNumber", "123456")
	require.NoError(t, err)
	assert.Equal(t, FieldIECRONumber, res.Tag)
	assert.True(t, res.Valid)
}
