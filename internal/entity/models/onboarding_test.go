package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDraft() *Onboarding {
	return NewOnboarding(id.OrgID(uuid.New()), testTime)
}

func TestNewOnboarding_StartsDraftWithoutCategory(t *testing.T) {
	o := newDraft()
	assert.Equal(t, StatusDraft, o.Status)
	assert.Nil(t, o.Category)
}

func TestSetCategory_AdvancesDraftToEntitySetup(t *testing.T) {
	o := newDraft()
	require.NoError(t, o.CanSetCategory())

	o.ApplySetCategory(CategoryClub, testTime)
	assert.Equal(t, StatusEntitySetup, o.Status)
	require.NotNil(t, o.Category)
	assert.Equal(t, CategoryClub, *o.Category)
}

func TestSetCategory_ChangeBeforeVerificationKeepsStatus(t *testing.T) {
	o := newDraft()
	o.ApplySetCategory(CategoryClub, testTime)
	o.ApplySubmission(testTime)
	o.ApplyRejection("missing registration evidence", testTime)

	require.NoError(t, o.CanSetCategory())
	o.ApplySetCategory(CategoryCharity, testTime)
	assert.Equal(t, StatusEntitySetup, o.Status)
	assert.Equal(t, CategoryCharity, *o.Category)
}

func TestSetCategory_FrozenAfterVerification(t *testing.T) {
	o := newDraft()
	o.ApplySetCategory(CategoryClub, testTime)
	o.ApplySubmission(testTime)
	o.ApplyVerification(testTime)

	err := o.CanSetCategory()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestSetCategory_BlockedWhenSuspended(t *testing.T) {
	o := newDraft()
	o.ApplySuspension(testTime)
	require.Error(t, o.CanSetCategory())
}

func TestSubmit_OnlyFromEntitySetup(t *testing.T) {
	o := newDraft()
	require.Error(t, o.CanSubmit(), "draft cannot submit before choosing a category")

	o.ApplySetCategory(CategoryClub, testTime)
	require.NoError(t, o.CanSubmit())

	o.ApplySubmission(testTime)
	assert.Equal(t, StatusPendingVerification, o.Status)
	require.Error(t, o.CanSubmit(), "no double submission")
}

func TestRejection_ReturnsToSetupWithNotes(t *testing.T) {
	o := newDraft()
	o.ApplySetCategory(CategoryClub, testTime)
	o.ApplySubmission(testTime)

	require.NoError(t, o.CanReject())
	o.ApplyRejection("CRO number does not match the legal name", testTime)

	assert.Equal(t, StatusEntitySetup, o.Status)
	assert.Equal(t, "CRO number does not match the legal name", o.RejectionNotes)
}

func TestResubmission_ClearsRejectionNotes(t *testing.T) {
	o := newDraft()
	o.ApplySetCategory(CategoryClub, testTime)
	o.ApplySubmission(testTime)
	o.ApplyRejection("incomplete", testTime)

	require.NoError(t, o.CanSubmit())
	o.ApplySubmission(testTime)
	assert.Empty(t, o.RejectionNotes)
}

func TestVerification_OnlyFromPending(t *testing.T) {
	o := newDraft()
	require.Error(t, o.CanVerify())

	o.ApplySetCategory(CategoryClub, testTime)
	require.Error(t, o.CanVerify())

	o.ApplySubmission(testTime)
	require.NoError(t, o.CanVerify())

	o.ApplyVerification(testTime)
	assert.Equal(t, StatusVerified, o.Status)
}

func TestSuspension_FromAnyStateOnce(t *testing.T) {
	for _, setup := range []func(*Onboarding){
		func(o *Onboarding) {},
		func(o *Onboarding) { o.ApplySetCategory(CategoryClub, testTime) },
		func(o *Onboarding) { o.ApplySetCategory(CategoryClub, testTime); o.ApplySubmission(testTime) },
		func(o *Onboarding) {
			o.ApplySetCategory(CategoryClub, testTime)
			o.ApplySubmission(testTime)
			o.ApplyVerification(testTime)
		},
	} {
		o := newDraft()
		setup(o)
		require.NoError(t, o.CanSuspend(), "suspend should be allowed from %s", o.Status)
		o.ApplySuspension(testTime)
		assert.Equal(t, StatusSuspended, o.Status)
		require.Error(t, o.CanSuspend(), "suspend is not idempotent")
	}
}

func TestClone_DoesNotAliasCategory(t *testing.T) {
	o := newDraft()
	o.ApplySetCategory(CategoryClub, testTime)

	clone := o.Clone()
	*clone.Category = CategoryCharity
	assert.Equal(t, CategoryClub, *o.Category)
}
