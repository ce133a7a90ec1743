package models

import (
	dErrors "clubraise/pkg/domain-errors"
)

// EntityCategory classifies the organization during onboarding. It is chosen
// once in the entity-type step and becomes immutable when the organization
// reaches verified status.
type EntityCategory string

const (
	CategoryClub           EntityCategory = "club"
	CategoryCharity        EntityCategory = "charity"
	CategorySchool         EntityCategory = "school"
	CategoryCommunityGroup EntityCategory = "community_group"
	CategoryCause          EntityCategory = "cause"
)

func (c EntityCategory) Valid() bool {
	switch c {
	case CategoryClub, CategoryCharity, CategorySchool, CategoryCommunityGroup, CategoryCause:
		return true
	}
	return false
}

func ParseEntityCategory(s string) (EntityCategory, error) {
	c := EntityCategory(s)
	if !c.Valid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown entity category %q", s)
	}
	return c, nil
}
