package models

// OnboardingStatus is the coarse lifecycle stage of an organization's
// verification journey.
//
// Lifecycle: draft → entity_setup → pending_verification → verified, with
// rejection returning a pending entity to entity_setup and suspension
// reachable from any other state through an administrative action.
type OnboardingStatus string

const (
	StatusDraft               OnboardingStatus = "draft"
	StatusEntitySetup         OnboardingStatus = "entity_setup"
	StatusPendingVerification OnboardingStatus = "pending_verification"
	StatusVerified            OnboardingStatus = "verified"
	StatusSuspended           OnboardingStatus = "suspended"
)

func (s OnboardingStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusEntitySetup, StatusPendingVerification, StatusVerified, StatusSuspended:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition is permitted by the guard
// table, ignoring who requests it. Admin-only enforcement happens at the
// transport layer.
func (s OnboardingStatus) CanTransitionTo(next OnboardingStatus) bool {
	if next == StatusSuspended {
		return s != StatusSuspended
	}
	switch s {
	case StatusDraft:
		return next == StatusEntitySetup
	case StatusEntitySetup:
		return next == StatusPendingVerification
	case StatusPendingVerification:
		return next == StatusVerified || next == StatusEntitySetup
	}
	return false
}

// CanSelfEdit reports whether the organization may edit its own entity
// details in this status. Verified records are read-only to the
// organization; suspended organizations lose all self-service access.
func (s OnboardingStatus) CanSelfEdit() bool {
	return s != StatusVerified && s != StatusSuspended
}

// Progress is the caller-facing answer to "what should I do next".
type Progress struct {
	Allowed       bool   `json:"allowed"`
	NextStepHint  string `json:"next_step_hint,omitempty"`
	BlockedReason string `json:"blocked_reason,omitempty"`
}

// CanProceed maps a status onto caller guidance. It is a pure function of
// the status and must mirror the transition guard table exactly.
func CanProceed(s OnboardingStatus) Progress {
	switch s {
	case StatusDraft:
		return Progress{Allowed: true, NextStepHint: "choose an entity type"}
	case StatusEntitySetup:
		return Progress{Allowed: true, NextStepHint: "complete entity details and submit for verification"}
	case StatusPendingVerification:
		return Progress{Allowed: false, BlockedReason: "awaiting review"}
	case StatusVerified:
		return Progress{Allowed: true, NextStepHint: "set up payments"}
	case StatusSuspended:
		return Progress{Allowed: false, BlockedReason: "contact support"}
	}
	return Progress{Allowed: false, BlockedReason: "unknown status"}
}
