package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"clubraise/internal/entity/models"
	id "clubraise/pkg/domain"
)

// CachedOnboardingStore is a read-through Redis cache in front of any
// OnboardingStore. Status reads dominate the onboarding flow (every page
// load asks "can I proceed"), so they are served from cache; every write
// path invalidates before delegating. Cache failures degrade to the inner
// store, never to an error.
type CachedOnboardingStore struct {
	inner  OnboardingStore
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedOnboardingStore(inner OnboardingStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedOnboardingStore {
	return &CachedOnboardingStore{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (s *CachedOnboardingStore) Create(ctx context.Context, onboarding *models.Onboarding) error {
	s.invalidate(ctx, onboarding.OrgID)
	return s.inner.Create(ctx, onboarding)
}

func (s *CachedOnboardingStore) FindByOrg(ctx context.Context, orgID id.OrgID) (*models.Onboarding, error) {
	key := cacheKey(orgID)
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var record models.Onboarding
		if err := json.Unmarshal(payload, &record); err == nil {
			return &record, nil
		}
		// Corrupt entry; drop it and fall through to the inner store.
		s.invalidate(ctx, orgID)
	} else if !errors.Is(err, redis.Nil) {
		s.warn(ctx, "onboarding cache read failed", orgID, err)
	}

	record, innerErr := s.inner.FindByOrg(ctx, orgID)
	if innerErr != nil {
		return nil, innerErr
	}
	if payload, err := json.Marshal(record); err == nil {
		if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			s.warn(ctx, "onboarding cache write failed", orgID, err)
		}
	}
	return record, nil
}

func (s *CachedOnboardingStore) Execute(ctx context.Context, orgID id.OrgID,
	validate func(*models.Onboarding) error,
	apply func(*models.Onboarding)) (*models.Onboarding, error) {

	s.invalidate(ctx, orgID)
	return s.inner.Execute(ctx, orgID, validate, apply)
}

func (s *CachedOnboardingStore) invalidate(ctx context.Context, orgID id.OrgID) {
	if err := s.client.Del(ctx, cacheKey(orgID)).Err(); err != nil {
		s.warn(ctx, "onboarding cache invalidation failed", orgID, err)
	}
}

func (s *CachedOnboardingStore) warn(ctx context.Context, msg string, orgID id.OrgID, err error) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, "org_id", orgID.String(), "error", err)
	}
}

func cacheKey(orgID id.OrgID) string {
	return "onboarding:" + orgID.String()
}
