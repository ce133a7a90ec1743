package models

import (
	"time"

	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
)

// Onboarding is the aggregate tracking one organization's progress through
// entity verification. It exists independently of the EntityDetails record:
// an organization can be mid-wizard in entity_setup with nothing stored yet.
//
// Invariants:
//   - Status is always a valid OnboardingStatus
//   - Status == draft implies Category == nil
//   - RejectionNotes is only set while status is entity_setup after an
//     administrative rejection, and cleared on the next submission
//   - CreatedAt is immutable after construction
//
// Transitions follow the CanX/ApplyX split so stores can run validation and
// mutation under one lock via their Execute methods.
type Onboarding struct {
	OrgID          id.OrgID         `json:"org_id"`
	Category       *EntityCategory  `json:"category,omitempty"`
	Status         OnboardingStatus `json:"status"`
	RejectionNotes string           `json:"rejection_notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// NewOnboarding starts an organization in draft with no category chosen.
func NewOnboarding(orgID id.OrgID, now time.Time) *Onboarding {
	return &Onboarding{
		OrgID:     orgID,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanSetCategory checks whether the entity category may be set or changed.
// The category freezes at verification and suspension removes self-service
// access entirely.
func (o *Onboarding) CanSetCategory() error {
	switch o.Status {
	case StatusVerified:
		return dErrors.New(dErrors.CodeInvariantViolation, "category is immutable once verified")
	case StatusSuspended:
		return dErrors.New(dErrors.CodeInvariantViolation, "organization is suspended")
	}
	return nil
}

// ApplySetCategory records the category and advances a draft organization
// into entity setup. Calling it again with a different category before
// verification is allowed and idempotent with respect to status.
func (o *Onboarding) ApplySetCategory(category EntityCategory, now time.Time) {
	o.Category = &category
	if o.Status == StatusDraft {
		o.Status = StatusEntitySetup
	}
	o.UpdatedAt = now
}

// CanSubmit checks the submission transition. Validation of the stored
// details is the service's job; this guard only covers status legality.
func (o *Onboarding) CanSubmit() error {
	if !o.Status.CanTransitionTo(StatusPendingVerification) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot submit for verification from status %q", o.Status)
	}
	return nil
}

// ApplySubmission moves the organization into pending verification and
// clears any previous rejection notes.
func (o *Onboarding) ApplySubmission(now time.Time) {
	o.Status = StatusPendingVerification
	o.RejectionNotes = ""
	o.UpdatedAt = now
}

// CanVerify checks the admin verification transition.
func (o *Onboarding) CanVerify() error {
	if !o.Status.CanTransitionTo(StatusVerified) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot verify from status %q", o.Status)
	}
	return nil
}

// ApplyVerification marks the organization verified. From here entity
// details and category are read-only to the organization.
func (o *Onboarding) ApplyVerification(now time.Time) {
	o.Status = StatusVerified
	o.RejectionNotes = ""
	o.UpdatedAt = now
}

// CanReject checks the admin rejection transition.
func (o *Onboarding) CanReject() error {
	if o.Status != StatusPendingVerification {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot reject from status %q", o.Status)
	}
	return nil
}

// ApplyRejection returns control to the organization with the reviewer's
// notes attached for display.
func (o *Onboarding) ApplyRejection(notes string, now time.Time) {
	o.Status = StatusEntitySetup
	o.RejectionNotes = notes
	o.UpdatedAt = now
}

// CanSuspend checks the administrative suspension transition.
func (o *Onboarding) CanSuspend() error {
	if !o.Status.CanTransitionTo(StatusSuspended) {
		return dErrors.New(dErrors.CodeInvariantViolation, "organization is already suspended")
	}
	return nil
}

// ApplySuspension blocks all further self-service transitions and edits.
func (o *Onboarding) ApplySuspension(now time.Time) {
	o.Status = StatusSuspended
	o.UpdatedAt = now
}

// Clone returns a deep copy so stores can hand out records without aliasing
// their internal state.
func (o *Onboarding) Clone() *Onboarding {
	out := *o
	if o.Category != nil {
		c := *o.Category
		out.Category = &c
	}
	return &out
}
