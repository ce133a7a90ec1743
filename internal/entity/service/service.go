// Package service orchestrates the entity onboarding flow: category
// selection, wizard persistence, submission, and the administrative
// verify/reject/suspend decisions.
//
// The service holds no mutable state between calls; each operation is a
// fresh read-validate-write cycle through the stores. Status transitions
// run inside the stores' Execute methods so the guard check and the write
// land as a single unit.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"clubraise/internal/audit"
	"clubraise/internal/entity/metrics"
	"clubraise/internal/entity/models"
	"clubraise/internal/entity/store"
	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
	"clubraise/pkg/platform/sentinel"
	"clubraise/pkg/requestcontext"
)

// Service is the entity setup orchestrator.
type Service struct {
	onboardings store.OnboardingStore
	entities    store.EntityStore
	logger      *slog.Logger
	audit       audit.Publisher
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) { s.audit = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(onboardings store.OnboardingStore, entities store.EntityStore, opts ...Option) *Service {
	s := &Service{
		onboardings: onboardings,
		entities:    entities,
		tracer:      otel.Tracer("clubraise/entity"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StatusView is the read model for "where am I in onboarding".
type StatusView struct {
	Category       *models.EntityCategory
	Status         models.OnboardingStatus
	RejectionNotes string
	Progress       models.Progress
}

// DetailsView pairs the stored record with its completeness score and the
// onboarding status that gates what the caller may do with it.
type DetailsView struct {
	Details      *models.EntityDetails
	Completeness models.CompletenessReport
	Status       models.OnboardingStatus
	Progress     models.Progress
}

// SetEntityCategory records the organization's category and advances a
// draft organization into entity setup. A verified organization's category
// is frozen.
func (s *Service) SetEntityCategory(ctx context.Context, orgID id.OrgID, category models.EntityCategory) (*models.Onboarding, error) {
	ctx, span := s.tracer.Start(ctx, "entity.SetCategory")
	defer span.End()

	onboarding, err := s.applyCategory(ctx, orgID, category, dErrors.CodeInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.emitAudit(ctx, audit.ActionCategorySet, orgID, string(category))
	if s.metrics != nil {
		s.metrics.CategoriesSet.Inc()
	}
	return onboarding, nil
}

// ChangeEntityCategory is the post-setup variant of SetEntityCategory; the
// only difference is how a frozen category is reported.
func (s *Service) ChangeEntityCategory(ctx context.Context, orgID id.OrgID, category models.EntityCategory) (*models.Onboarding, error) {
	ctx, span := s.tracer.Start(ctx, "entity.ChangeCategory")
	defer span.End()

	onboarding, err := s.applyCategory(ctx, orgID, category, dErrors.CodeForbidden)
	if err != nil {
		return nil, err
	}
	s.emitAudit(ctx, audit.ActionCategorySet, orgID, string(category))
	if s.metrics != nil {
		s.metrics.CategoriesSet.Inc()
	}
	return onboarding, nil
}

func (s *Service) applyCategory(ctx context.Context, orgID id.OrgID, category models.EntityCategory, codeWhenFrozen dErrors.Code) (*models.Onboarding, error) {
	if !category.Valid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown entity category %q", category)
	}
	if err := s.ensureOnboarding(ctx, orgID); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	onboarding, err := s.onboardings.Execute(ctx, orgID,
		func(o *models.Onboarding) error {
			switch o.Status {
			case models.StatusVerified:
				return dErrors.New(codeWhenFrozen, "category cannot be changed after verification")
			case models.StatusSuspended:
				return dErrors.New(dErrors.CodeForbidden, "organization is suspended; contact support")
			}
			return nil
		},
		func(o *models.Onboarding) {
			o.ApplySetCategory(category, now)
		},
	)
	if err != nil {
		return nil, s.wrapStoreErr(err, "failed to set entity category")
	}
	return onboarding, nil
}

// GetOnboardingStatus reports the current category, status, and what the
// caller should do next. An organization with no onboarding row yet is in
// draft; draft is the initial state of every newly created organization.
func (s *Service) GetOnboardingStatus(ctx context.Context, orgID id.OrgID) (*StatusView, error) {
	onboarding, err := s.onboardings.FindByOrg(ctx, orgID)
	if errors.Is(err, sentinel.ErrNotFound) {
		onboarding = models.NewOnboarding(orgID, requestcontext.Now(ctx))
	} else if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load onboarding status")
	}
	return &StatusView{
		Category:       onboarding.Category,
		Status:         onboarding.Status,
		RejectionNotes: onboarding.RejectionNotes,
		Progress:       models.CanProceed(onboarding.Status),
	}, nil
}

// CreateEntityDetails validates the full form and persists a new record.
// Callers with an existing record must use UpdateEntityDetails instead.
func (s *Service) CreateEntityDetails(ctx context.Context, orgID id.OrgID, form *models.EntityForm) (*models.EntityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "entity.CreateDetails")
	defer span.End()

	now := requestcontext.Now(ctx)
	if result := form.ValidateAll(now); !result.Valid {
		return nil, dErrors.NewValidation(result.Errors)
	}
	if err := s.requireSelfEdit(ctx, orgID); err != nil {
		return nil, err
	}

	details := form.ToDetails(id.EntityID(newUUID()), orgID, now)
	if err := s.entities.Create(ctx, details); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "entity details already exist; use update")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create entity details")
	}

	s.emitAudit(ctx, audit.ActionDetailsCreated, orgID, "")
	if s.metrics != nil {
		s.metrics.DetailsCreated.Inc()
	}
	return details, nil
}

// UpdateEntityDetails merges a partial form into the stored record. The
// merged record must still pass full validation, so an update can never
// leave a previously valid record invalid.
func (s *Service) UpdateEntityDetails(ctx context.Context, orgID id.OrgID, form *models.EntityForm) (*models.EntityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "entity.UpdateDetails")
	defer span.End()

	if err := s.requireSelfEdit(ctx, orgID); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	details, err := s.entities.Execute(ctx, orgID,
		func(current *models.EntityDetails) error {
			merged := current.Clone()
			form.ApplyTo(merged, now)
			if result := models.FormFromDetails(merged).ValidateAll(now); !result.Valid {
				return dErrors.NewValidation(result.Errors)
			}
			return nil
		},
		func(current *models.EntityDetails) {
			form.ApplyTo(current, now)
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no entity details to update; use create")
		}
		return nil, s.wrapStoreErr(err, "failed to update entity details")
	}

	s.emitAudit(ctx, audit.ActionDetailsUpdated, orgID, "")
	if s.metrics != nil {
		s.metrics.DetailsUpdated.Inc()
	}
	return details, nil
}

// GetEntityDetails returns the stored record with its completeness score.
// Absence is a normal condition during early onboarding, reported as
// not_found for the caller to branch on. The record and the onboarding row
// are independent reads, so they are fetched concurrently.
func (s *Service) GetEntityDetails(ctx context.Context, orgID id.OrgID) (*DetailsView, error) {
	details, onboarding, err := s.fetchDetailsAndOnboarding(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &DetailsView{
		Details:      details,
		Completeness: models.Completeness(details),
		Status:       onboarding.Status,
		Progress:     models.CanProceed(onboarding.Status),
	}, nil
}

// DeleteEntityDetails removes the stored record. Deletion is always an
// explicit operation, and only possible while the record is still
// self-editable.
func (s *Service) DeleteEntityDetails(ctx context.Context, orgID id.OrgID) error {
	ctx, span := s.tracer.Start(ctx, "entity.DeleteDetails")
	defer span.End()

	if err := s.requireSelfEdit(ctx, orgID); err != nil {
		return err
	}
	if err := s.entities.Delete(ctx, orgID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "no entity details found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete entity details")
	}

	s.emitAudit(ctx, audit.ActionDetailsDeleted, orgID, "")
	if s.metrics != nil {
		s.metrics.DetailsDeleted.Inc()
	}
	return nil
}

// SubmitForVerification runs full validation over the stored record and
// moves the organization into pending verification. Submission succeeds
// exactly when the step validator passes with no step filter.
func (s *Service) SubmitForVerification(ctx context.Context, orgID id.OrgID) (*StatusView, error) {
	ctx, span := s.tracer.Start(ctx, "entity.Submit")
	defer span.End()

	details, err := s.entities.FindByOrg(ctx, orgID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeInvalidTransition, "complete entity details before submitting")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load entity details")
	}

	now := requestcontext.Now(ctx)
	if result := models.FormFromDetails(details).ValidateAll(now); !result.Valid {
		return nil, dErrors.NewValidation(result.Errors)
	}

	onboarding, err := s.onboardings.Execute(ctx, orgID,
		func(o *models.Onboarding) error {
			if err := o.CanSubmit(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidTransition, "cannot submit for verification")
			}
			return nil
		},
		func(o *models.Onboarding) {
			o.ApplySubmission(now)
		},
	)
	if err != nil {
		return nil, s.wrapStoreErr(err, "failed to submit for verification")
	}

	s.emitAudit(ctx, audit.ActionSubmitted, orgID, "")
	if s.metrics != nil {
		s.metrics.Submissions.Inc()
		s.metrics.SubmissionCompleteness.Observe(float64(models.Completeness(details).Percent))
	}
	return s.statusView(onboarding), nil
}

// VerifyEntity is the administrative approval. It transitions the
// organization to verified and stamps the stored record; from here the
// record and category are read-only to the organization.
func (s *Service) VerifyEntity(ctx context.Context, orgID id.OrgID, notes string) (*models.EntityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "entity.Verify")
	defer span.End()

	now := requestcontext.Now(ctx)
	if _, err := s.onboardings.Execute(ctx, orgID,
		func(o *models.Onboarding) error {
			if err := o.CanVerify(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidTransition, "cannot verify entity")
			}
			return nil
		},
		func(o *models.Onboarding) {
			o.ApplyVerification(now)
		},
	); err != nil {
		return nil, s.wrapStoreErr(err, "failed to verify entity")
	}

	actor := requestcontext.Actor(ctx)
	details, err := s.entities.Execute(ctx, orgID, nil,
		func(d *models.EntityDetails) {
			d.RegistrationVerified = true
			d.VerificationNotes = notes
			d.VerifiedAt = &now
			d.VerifiedBy = actor
			d.UpdatedAt = now
		},
	)
	if err != nil {
		return nil, s.wrapStoreErr(err, "failed to stamp verified record")
	}

	s.emitAudit(ctx, audit.ActionVerified, orgID, notes)
	if s.metrics != nil {
		s.metrics.Verifications.Inc()
	}
	return details, nil
}

// RejectEntity is the administrative rejection. Notes are mandatory: the
// organization needs to know what to fix.
func (s *Service) RejectEntity(ctx context.Context, orgID id.OrgID, notes string) (*models.EntityDetails, error) {
	ctx, span := s.tracer.Start(ctx, "entity.Reject")
	defer span.End()

	if notes == "" {
		return nil, dErrors.NewValidation([]string{"Rejection notes are required"})
	}

	now := requestcontext.Now(ctx)
	if _, err := s.onboardings.Execute(ctx, orgID,
		func(o *models.Onboarding) error {
			if err := o.CanReject(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidTransition, "cannot reject entity")
			}
			return nil
		},
		func(o *models.Onboarding) {
			o.ApplyRejection(notes, now)
		},
	); err != nil {
		return nil, s.wrapStoreErr(err, "failed to reject entity")
	}

	details, err := s.entities.Execute(ctx, orgID, nil,
		func(d *models.EntityDetails) {
			d.RegistrationVerified = false
			d.VerificationNotes = notes
			d.UpdatedAt = now
		},
	)
	if err != nil {
		return nil, s.wrapStoreErr(err, "failed to record rejection notes")
	}

	s.emitAudit(ctx, audit.ActionRejected, orgID, notes)
	if s.metrics != nil {
		s.metrics.Rejections.Inc()
	}
	return details, nil
}

// SuspendEntity blocks all further self-service transitions and edits.
// Allowed from any state through an administrative action.
func (s *Service) SuspendEntity(ctx context.Context, orgID id.OrgID, notes string) (*StatusView, error) {
	ctx, span := s.tracer.Start(ctx, "entity.Suspend")
	defer span.End()

	now := requestcontext.Now(ctx)
	onboarding, err := s.onboardings.Execute(ctx, orgID,
		func(o *models.Onboarding) error {
			if err := o.CanSuspend(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidTransition, "cannot suspend entity")
			}
			return nil
		},
		func(o *models.Onboarding) {
			o.ApplySuspension(now)
		},
	)
	if err != nil {
		return nil, s.wrapStoreErr(err, "failed to suspend entity")
	}

	s.emitAudit(ctx, audit.ActionSuspended, orgID, notes)
	if s.metrics != nil {
		s.metrics.Suspensions.Inc()
	}
	return s.statusView(onboarding), nil
}

// requireSelfEdit rejects edits once the record is immutable to the
// organization (verified) or self-service is blocked (suspended). A single
// guard here means no caller can bypass status-gated mutability.
func (s *Service) requireSelfEdit(ctx context.Context, orgID id.OrgID) error {
	onboarding, err := s.onboardings.FindByOrg(ctx, orgID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// No onboarding row yet means draft, which is editable.
		return nil
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load onboarding status")
	}
	if !onboarding.Status.CanSelfEdit() {
		return dErrors.Newf(dErrors.CodeForbidden, "entity details are read-only in status %q; contact support", onboarding.Status)
	}
	return nil
}

// ensureOnboarding lazily materializes the draft row the first time an
// organization touches onboarding.
func (s *Service) ensureOnboarding(ctx context.Context, orgID id.OrgID) error {
	_, err := s.onboardings.FindByOrg(ctx, orgID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load onboarding record")
	}
	createErr := s.onboardings.Create(ctx, models.NewOnboarding(orgID, requestcontext.Now(ctx)))
	if createErr != nil && !errors.Is(createErr, sentinel.ErrConflict) {
		// A concurrent first touch losing the race is fine; anything else is not.
		return dErrors.Wrap(createErr, dErrors.CodeInternal, "failed to create onboarding record")
	}
	return nil
}

func (s *Service) statusView(o *models.Onboarding) *StatusView {
	return &StatusView{
		Category:       o.Category,
		Status:         o.Status,
		RejectionNotes: o.RejectionNotes,
		Progress:       models.CanProceed(o.Status),
	}
}

// wrapStoreErr passes coded errors through untouched and re-codes
// everything else as internal.
func (s *Service) wrapStoreErr(err error, message string) error {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "organization has no onboarding record")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}

func (s *Service) emitAudit(ctx context.Context, action audit.Action, orgID id.OrgID, notes string) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"log_type", "audit",
			"org_id", orgID.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.audit == nil {
		return
	}
	event := audit.Event{
		ID:         newUUID(),
		OrgID:      orgID,
		Actor:      requestcontext.Actor(ctx),
		Action:     action,
		Notes:      notes,
		OccurredAt: requestcontext.Now(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"org_id", orgID.String(),
			"action", action,
			"error", err,
		)
	}
}
