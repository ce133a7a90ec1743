// Package store persists onboarding progress and entity details.
//
// Stores are interface-driven to keep the domain logic testable and to
// allow swapping in-memory and PostgreSQL persistence without rewiring
// business code. Implementations return pkg/platform/sentinel errors;
// services translate them into domain errors.
package store

import (
	"context"

	"clubraise/internal/entity/models"
	id "clubraise/pkg/domain"
)

// OnboardingStore persists per-organization onboarding progress. Execute
// runs validate and apply under the store's per-record lock (mutex or
// SELECT ... FOR UPDATE) so status transitions are checked and applied as a
// single unit.
type OnboardingStore interface {
	Create(ctx context.Context, onboarding *models.Onboarding) error
	FindByOrg(ctx context.Context, orgID id.OrgID) (*models.Onboarding, error)
	Execute(ctx context.Context, orgID id.OrgID,
		validate func(*models.Onboarding) error,
		apply func(*models.Onboarding)) (*models.Onboarding, error)
}

// EntityStore persists entity-details records, at most one per
// organization.
type EntityStore interface {
	Create(ctx context.Context, details *models.EntityDetails) error
	FindByOrg(ctx context.Context, orgID id.OrgID) (*models.EntityDetails, error)
	Delete(ctx context.Context, orgID id.OrgID) error
	Execute(ctx context.Context, orgID id.OrgID,
		validate func(*models.EntityDetails) error,
		apply func(*models.EntityDetails)) (*models.EntityDetails, error)
}
