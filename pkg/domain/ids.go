// Package domain holds typed identifiers shared across features.
//
// IDs are distinct UUID types so an organization ID can never be passed
// where an entity ID is expected. Parsing enforces the invariant that IDs
// are valid, non-nil UUIDs at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "clubraise/pkg/domain-errors"
)

// OrgID identifies the organization (club, charity, school) going through
// onboarding.
type OrgID uuid.UUID

// EntityID identifies a stored entity-details record.
type EntityID uuid.UUID

func (id OrgID) String() string    { return uuid.UUID(id).String() }
func (id EntityID) String() string { return uuid.UUID(id).String() }

func (id OrgID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id EntityID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func ParseOrgID(s string) (OrgID, error) {
	u, err := parseUUID(s, "organization id")
	return OrgID(u), err
}

func ParseEntityID(s string) (EntityID, error) {
	u, err := parseUUID(s, "entity id")
	return EntityID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", label)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be the nil UUID", label)
	}
	return u, nil
}
