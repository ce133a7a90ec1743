package store

import (
	"context"
	"sync"

	"clubraise/internal/entity/models"
	id "clubraise/pkg/domain"
	"clubraise/pkg/platform/sentinel"
)

// In-memory stores keep development and tests lightweight. They hand out
// deep copies so callers can never mutate store state except through
// Execute.

type InMemoryOnboardingStore struct {
	mu      sync.RWMutex
	records map[id.OrgID]*models.Onboarding
}

func NewInMemoryOnboardingStore() *InMemoryOnboardingStore {
	return &InMemoryOnboardingStore{records: make(map[id.OrgID]*models.Onboarding)}
}

func (s *InMemoryOnboardingStore) Create(_ context.Context, onboarding *models.Onboarding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[onboarding.OrgID]; ok {
		return sentinel.ErrConflict
	}
	s.records[onboarding.OrgID] = onboarding.Clone()
	return nil
}

func (s *InMemoryOnboardingStore) FindByOrg(_ context.Context, orgID id.OrgID) (*models.Onboarding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[orgID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return record.Clone(), nil
}

// Execute holds the write lock across validate and apply so concurrent
// transitions cannot interleave.
func (s *InMemoryOnboardingStore) Execute(_ context.Context, orgID id.OrgID,
	validate func(*models.Onboarding) error,
	apply func(*models.Onboarding)) (*models.Onboarding, error) {

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[orgID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(record.Clone()); err != nil {
			return nil, err
		}
	}
	updated := record.Clone()
	apply(updated)
	s.records[orgID] = updated
	return updated.Clone(), nil
}

type InMemoryEntityStore struct {
	mu      sync.RWMutex
	records map[id.OrgID]*models.EntityDetails
}

func NewInMemoryEntityStore() *InMemoryEntityStore {
	return &InMemoryEntityStore{records: make(map[id.OrgID]*models.EntityDetails)}
}

func (s *InMemoryEntityStore) Create(_ context.Context, details *models.EntityDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[details.OrgID]; ok {
		return sentinel.ErrConflict
	}
	s.records[details.OrgID] = details.Clone()
	return nil
}

func (s *InMemoryEntityStore) FindByOrg(_ context.Context, orgID id.OrgID) (*models.EntityDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[orgID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return record.Clone(), nil
}

func (s *InMemoryEntityStore) Delete(_ context.Context, orgID id.OrgID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[orgID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, orgID)
	return nil
}

func (s *InMemoryEntityStore) Execute(_ context.Context, orgID id.OrgID,
	validate func(*models.EntityDetails) error,
	apply func(*models.EntityDetails)) (*models.EntityDetails, error) {

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[orgID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(record.Clone()); err != nil {
			return nil, err
		}
	}
	updated := record.Clone()
	apply(updated)
	s.records[orgID] = updated
	return updated.Clone(), nil
}
