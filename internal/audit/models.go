// Package audit records who did what to an organization's onboarding
// record. Admin decisions (verify, reject, suspend) must always be audited;
// self-service actions are audited best-effort.
package audit

import (
	"time"

	"github.com/google/uuid"

	id "clubraise/pkg/domain"
)

type Action string

const (
	ActionCategorySet    Action = "entity_category_set"
	ActionDetailsCreated Action = "entity_details_created"
	ActionDetailsUpdated Action = "entity_details_updated"
	ActionDetailsDeleted Action = "entity_details_deleted"
	ActionSubmitted      Action = "entity_submitted"
	ActionVerified       Action = "entity_verified"
	ActionRejected       Action = "entity_rejected"
	ActionSuspended      Action = "entity_suspended"
)

// Event is one audit trail entry.
type Event struct {
	ID         uuid.UUID `json:"id"`
	OrgID      id.OrgID  `json:"org_id"`
	Actor      string    `json:"actor,omitempty"`
	Action     Action    `json:"action"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
