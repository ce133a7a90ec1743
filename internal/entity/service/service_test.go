package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"clubraise/internal/audit"
	"clubraise/internal/entity/models"
	"clubraise/internal/entity/store"
	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
	"clubraise/pkg/requestcontext"
)

var serviceTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	svc   *Service
	audit *audit.MemoryPublisher
	ctx   context.Context
	orgID id.OrgID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.audit = audit.NewMemoryPublisher()
	s.svc = New(
		store.NewInMemoryOnboardingStore(),
		store.NewInMemoryEntityStore(),
		WithLogger(slog.Default()),
		WithAuditPublisher(s.audit),
	)
	s.orgID = id.OrgID(uuid.New())
	ctx := requestcontext.WithTime(context.Background(), serviceTime)
	ctx = requestcontext.WithActor(ctx, "member:treasurer")
	s.ctx = ctx
}

func (s *ServiceSuite) strPtr(v string) *string { return &v }

func (s *ServiceSuite) validForm() *models.EntityForm {
	j := models.JurisdictionIreland
	l := models.StructureUnincorporatedAssociation
	return &models.EntityForm{
		LegalName:      s.strPtr("Ballyfermot Hurling Club"),
		AddressLine1:   s.strPtr("12 Main Street"),
		City:           s.strPtr("Dublin"),
		PostalCode:     s.strPtr("D10X285"),
		Jurisdiction:   &j,
		LegalStructure: &l,
	}
}

// reachPending walks an organization to pending_verification.
func (s *ServiceSuite) reachPending() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)
	_, err = s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)
	_, err = s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestStatus_NewOrganizationIsDraft() {
	view, err := s.svc.GetOnboardingStatus(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusDraft, view.Status)
	s.Nil(view.Category, "draft implies no category chosen yet")
	s.True(view.Progress.Allowed)
	s.Equal("choose an entity type", view.Progress.NextStepHint)
}

func (s *ServiceSuite) TestSetCategory_AdvancesToEntitySetup() {
	onboarding, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)
	s.Equal(models.StatusEntitySetup, onboarding.Status)
	s.Require().NotNil(onboarding.Category)
	s.Equal(models.CategoryClub, *onboarding.Category)

	events := s.audit.Events()
	s.Require().Len(events, 1)
	s.Equal(audit.ActionCategorySet, events[0].Action)
	s.Equal("member:treasurer", events[0].Actor)
}

func (s *ServiceSuite) TestSetCategory_ChangeBeforeVerification() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)

	onboarding, err := s.svc.ChangeEntityCategory(s.ctx, s.orgID, models.CategoryCharity)
	s.Require().NoError(err)
	s.Equal(models.CategoryCharity, *onboarding.Category)
	s.Equal(models.StatusEntitySetup, onboarding.Status)
}

func (s *ServiceSuite) TestSetCategory_FrozenOnceVerified() {
	s.reachPending()
	_, err := s.svc.VerifyEntity(s.ctx, s.orgID, "looks good")
	s.Require().NoError(err)

	_, err = s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryCharity)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))

	_, err = s.svc.ChangeEntityCategory(s.ctx, s.orgID, models.CategoryCharity)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ServiceSuite) TestSetCategory_BlockedWhenSuspended() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)
	_, err = s.svc.SuspendEntity(s.ctx, s.orgID, "chargeback fraud")
	s.Require().NoError(err)

	_, err = s.svc.ChangeEntityCategory(s.ctx, s.orgID, models.CategoryCharity)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ServiceSuite) TestCreateDetails_RejectsInvalidForm() {
	form := s.validForm()
	form.LegalName = nil

	_, err := s.svc.CreateEntityDetails(s.ctx, s.orgID, form)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(dErrors.Details(err), "Legal name is required")
}

func (s *ServiceSuite) TestCreateDetails_SecondCreateConflicts() {
	_, err := s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	_, err = s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestUpdateDetails_MergesPartialForm() {
	created, err := s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	update := &models.EntityForm{
		Ireland: &models.IrelandRegistrationForm{CRONumber: s.strPtr("123456")},
	}
	updated, err := s.svc.UpdateEntityDetails(s.ctx, s.orgID, update)
	s.Require().NoError(err)
	s.Equal(created.LegalName, updated.LegalName)
	s.Require().NotNil(updated.Registration.Ireland.CRONumber)
	s.Equal("123456", *updated.Registration.Ireland.CRONumber)
}

// An update that would leave the merged record invalid is rejected and the
// stored record stays as it was.
func (s *ServiceSuite) TestUpdateDetails_RejectsInvalidMerge() {
	_, err := s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	update := &models.EntityForm{LegalName: s.strPtr("")}
	_, err = s.svc.UpdateEntityDetails(s.ctx, s.orgID, update)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	view, err := s.svc.GetEntityDetails(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal("Ballyfermot Hurling Club", view.Details.LegalName)
}

func (s *ServiceSuite) TestUpdateDetails_WithoutRecordIsNotFound() {
	_, err := s.svc.UpdateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// Verified records are read-only to the organization.
func (s *ServiceSuite) TestUpdateDetails_ForbiddenOnceVerified() {
	s.reachPending()
	_, err := s.svc.VerifyEntity(s.ctx, s.orgID, "")
	s.Require().NoError(err)

	update := &models.EntityForm{Description: s.strPtr("new description")}
	_, err = s.svc.UpdateEntityDetails(s.ctx, s.orgID, update)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	s.Require().Error(s.svc.DeleteEntityDetails(s.ctx, s.orgID))
}

func (s *ServiceSuite) TestGetDetails_ReturnsCompletenessAndProgress() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)
	_, err = s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	view, err := s.svc.GetEntityDetails(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(100, view.Completeness.Percent)
	s.Equal(models.StatusEntitySetup, view.Status)
	s.True(view.Progress.Allowed)
}

func (s *ServiceSuite) TestGetDetails_MissingRecordIsNotFound() {
	_, err := s.svc.GetEntityDetails(s.ctx, s.orgID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDeleteDetails_RemovesRecord() {
	_, err := s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteEntityDetails(s.ctx, s.orgID))
	_, err = s.svc.GetEntityDetails(s.ctx, s.orgID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestSubmit_RequiresStoredDetails() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)

	_, err = s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
}

func (s *ServiceSuite) TestSubmit_MovesToPending() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)
	_, err = s.svc.CreateEntityDetails(s.ctx, s.orgID, s.validForm())
	s.Require().NoError(err)

	view, err := s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusPendingVerification, view.Status)
	s.False(view.Progress.Allowed)
	s.Equal("awaiting review", view.Progress.BlockedReason)
}

func (s *ServiceSuite) TestSubmit_DoubleSubmissionFails() {
	s.reachPending()
	_, err := s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
}

func (s *ServiceSuite) TestVerify_StampsRecordAndActor() {
	s.reachPending()

	adminCtx := requestcontext.WithActor(s.ctx, "admin:reviews")
	details, err := s.svc.VerifyEntity(adminCtx, s.orgID, "registry checked")
	s.Require().NoError(err)
	s.True(details.RegistrationVerified)
	s.Equal("registry checked", details.VerificationNotes)
	s.Equal("admin:reviews", details.VerifiedBy)
	s.Require().NotNil(details.VerifiedAt)
	s.Equal(serviceTime, *details.VerifiedAt)

	view, err := s.svc.GetOnboardingStatus(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusVerified, view.Status)
	s.Equal("set up payments", view.Progress.NextStepHint)
}

func (s *ServiceSuite) TestVerify_OnlyFromPending() {
	_, err := s.svc.SetEntityCategory(s.ctx, s.orgID, models.CategoryClub)
	s.Require().NoError(err)

	_, err = s.svc.VerifyEntity(s.ctx, s.orgID, "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
}

func (s *ServiceSuite) TestReject_RequiresNotes() {
	s.reachPending()

	_, err := s.svc.RejectEntity(s.ctx, s.orgID, "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(dErrors.Details(err), "Rejection notes are required")

	// The organization is still pending; nothing moved.
	view, err := s.svc.GetOnboardingStatus(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusPendingVerification, view.Status)
}

func (s *ServiceSuite) TestReject_ReturnsToSetupWithNotes() {
	s.reachPending()

	details, err := s.svc.RejectEntity(s.ctx, s.orgID, "CRO number does not match")
	s.Require().NoError(err)
	s.False(details.RegistrationVerified)
	s.Equal("CRO number does not match", details.VerificationNotes)

	view, err := s.svc.GetOnboardingStatus(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusEntitySetup, view.Status)
	s.Equal("CRO number does not match", view.RejectionNotes)
}

func (s *ServiceSuite) TestResubmit_AfterRejectionClearsNotes() {
	s.reachPending()
	_, err := s.svc.RejectEntity(s.ctx, s.orgID, "fix the address")
	s.Require().NoError(err)

	view, err := s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal(models.StatusPendingVerification, view.Status)
	s.Empty(view.RejectionNotes)
}

func (s *ServiceSuite) TestSuspend_BlocksEverything() {
	s.reachPending()

	view, err := s.svc.SuspendEntity(s.ctx, s.orgID, "fraud report")
	s.Require().NoError(err)
	s.Equal(models.StatusSuspended, view.Status)
	s.Equal("contact support", view.Progress.BlockedReason)

	_, err = s.svc.SubmitForVerification(s.ctx, s.orgID)
	s.Require().Error(err)

	update := &models.EntityForm{Description: s.strPtr("still here")}
	_, err = s.svc.UpdateEntityDetails(s.ctx, s.orgID, update)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ServiceSuite) TestSuspend_WithoutOnboardingRowIsNotFound() {
	_, err := s.svc.SuspendEntity(s.ctx, s.orgID, "never onboarded")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestAdminDecisions_AlwaysAudited() {
	s.reachPending()
	_, err := s.svc.RejectEntity(s.ctx, s.orgID, "resubmit with CRO evidence")
	s.Require().NoError(err)

	var rejection *audit.Event
	for _, e := range s.audit.Events() {
		if e.Action == audit.ActionRejected {
			e := e
			rejection = &e
		}
	}
	s.Require().NotNil(rejection)
	s.Equal(s.orgID, rejection.OrgID)
	s.Equal("resubmit with CRO evidence", rejection.Notes)
	s.Equal(serviceTime, rejection.OccurredAt)
}

// Submission succeeds exactly when full validation of the stored record
// passes. A record stored valid, then partially degraded by a founded-year
// edit, must fail submission with the validator's messages.
func TestSubmit_ReportsValidationMessages(t *testing.T) {
	svc := New(store.NewInMemoryOnboardingStore(), store.NewInMemoryEntityStore())
	orgID := id.OrgID(uuid.New())
	ctx := requestcontext.WithTime(context.Background(), serviceTime)

	_, err := svc.SetEntityCategory(ctx, orgID, models.CategoryClub)
	require.NoError(t, err)

	j := models.JurisdictionIreland
	l := models.StructureOther
	name := "Cobh Rowing Club"
	line1 := "The Quay"
	city := "Cobh"
	postal := "P24XY12"
	year := 1700
	form := &models.EntityForm{
		LegalName:      &name,
		FoundedYear:    &year,
		AddressLine1:   &line1,
		City:           &city,
		PostalCode:     &postal,
		Jurisdiction:   &j,
		LegalStructure: &l,
	}

	_, err = svc.CreateEntityDetails(ctx, orgID, form)
	require.Error(t, err, "create runs full validation")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, dErrors.Details(err), "Founded year must be between 1800 and 2026")
}
