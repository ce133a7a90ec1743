package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"clubraise/internal/entity/models"
	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
	"clubraise/pkg/platform/sentinel"
	"clubraise/pkg/requestcontext"
)

// fetchDetailsAndOnboarding loads the entity record and the onboarding row
// concurrently; the two reads are independent. A missing entity record is
// not_found for the caller to branch on, a missing onboarding row reads as
// draft.
func (s *Service) fetchDetailsAndOnboarding(ctx context.Context, orgID id.OrgID) (*models.EntityDetails, *models.Onboarding, error) {
	var (
		details    *models.EntityDetails
		onboarding *models.Onboarding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.entities.FindByOrg(gctx, orgID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "no entity details found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load entity details")
		}
		details = d
		return nil
	})
	g.Go(func() error {
		o, err := s.onboardings.FindByOrg(gctx, orgID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				onboarding = models.NewOnboarding(orgID, requestcontext.Now(gctx))
				return nil
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load onboarding record")
		}
		onboarding = o
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return details, onboarding, nil
}

func newUUID() uuid.UUID {
	return uuid.New()
}
