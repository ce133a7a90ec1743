// Package handler exposes the entity onboarding API over HTTP.
//
// Self-service routes act on the organization carried in the request
// context by the auth middleware. Admin routes take the target organization
// from the URL and record the reviewing principal as the actor.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubraise/internal/entity/models"
	"clubraise/internal/entity/service"
	id "clubraise/pkg/domain"
	dErrors "clubraise/pkg/domain-errors"
	"clubraise/pkg/platform/httputil"
	"clubraise/pkg/requestcontext"
)

// EntityService is the slice of the entity service the handler calls.
//
//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks
type EntityService interface {
	SetEntityCategory(ctx context.Context, orgID id.OrgID, category models.EntityCategory) (*models.Onboarding, error)
	ChangeEntityCategory(ctx context.Context, orgID id.OrgID, category models.EntityCategory) (*models.Onboarding, error)
	GetOnboardingStatus(ctx context.Context, orgID id.OrgID) (*service.StatusView, error)
	CreateEntityDetails(ctx context.Context, orgID id.OrgID, form *models.EntityForm) (*models.EntityDetails, error)
	UpdateEntityDetails(ctx context.Context, orgID id.OrgID, form *models.EntityForm) (*models.EntityDetails, error)
	GetEntityDetails(ctx context.Context, orgID id.OrgID) (*service.DetailsView, error)
	DeleteEntityDetails(ctx context.Context, orgID id.OrgID) error
	SubmitForVerification(ctx context.Context, orgID id.OrgID) (*service.StatusView, error)
	VerifyEntity(ctx context.Context, orgID id.OrgID, notes string) (*models.EntityDetails, error)
	RejectEntity(ctx context.Context, orgID id.OrgID, notes string) (*models.EntityDetails, error)
	SuspendEntity(ctx context.Context, orgID id.OrgID, notes string) (*service.StatusView, error)
}

// Handler serves the onboarding and entity details endpoints.
type Handler struct {
	svc    EntityService
	logger *slog.Logger
}

func New(svc EntityService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the self-service routes. The caller is expected to have
// applied the org auth middleware to the router first.
func (h *Handler) Register(r chi.Router) {
	r.Post("/entity-type", h.setEntityType)
	r.Put("/entity-type", h.changeEntityType)
	r.Get("/status", h.getStatus)
	r.Post("/entity-details", h.createDetails)
	r.Put("/entity-details", h.updateDetails)
	r.Get("/entity-details", h.getDetails)
	r.Delete("/entity-details", h.deleteDetails)
	r.Post("/submit", h.submit)
}

// RegisterAdmin mounts the review routes. The caller is expected to have
// applied the admin token middleware to the router first.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/{orgID}/verify", h.verify)
	r.Post("/{orgID}/reject", h.reject)
	r.Post("/{orgID}/suspend", h.suspend)
}

func (h *Handler) setEntityType(w http.ResponseWriter, r *http.Request) {
	h.applyCategory(w, r, h.svc.SetEntityCategory)
}

func (h *Handler) changeEntityType(w http.ResponseWriter, r *http.Request) {
	h.applyCategory(w, r, h.svc.ChangeEntityCategory)
}

func (h *Handler) applyCategory(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, orgID id.OrgID, category models.EntityCategory) (*models.Onboarding, error),
) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SetEntityTypeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	category, err := models.ParseEntityCategory(req.Category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	onboarding, err := op(ctx, orgID, category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse(&service.StatusView{
		Category: onboarding.Category,
		Status:   onboarding.Status,
		Progress: models.CanProceed(onboarding.Status),
	}))
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	view, err := h.svc.GetOnboardingStatus(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse(view))
}

func (h *Handler) createDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[EntityDetailsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	details, err := h.svc.CreateEntityDetails(ctx, orgID, req.ToForm())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, entityDetailsResponse(details))
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[EntityDetailsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	details, err := h.svc.UpdateEntityDetails(ctx, orgID, req.ToForm())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entityDetailsResponse(details))
}

func (h *Handler) getDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	view, err := h.svc.GetEntityDetails(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detailsViewResponse(view))
}

func (h *Handler) deleteDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	if err := h.svc.DeleteEntityDetails(ctx, orgID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.requireOrg(w, ctx)
	if !ok {
		return
	}
	view, err := h.svc.SubmitForVerification(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse(view))
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.targetOrg(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	details, err := h.svc.VerifyEntity(ctx, orgID, req.Notes)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entityDetailsResponse(details))
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.targetOrg(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	details, err := h.svc.RejectEntity(ctx, orgID, req.Notes)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entityDetailsResponse(details))
}

func (h *Handler) suspend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID, ok := h.targetOrg(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	view, err := h.svc.SuspendEntity(ctx, orgID, req.Notes)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse(view))
}

// requireOrg pulls the authenticated organization out of the context. A
// zero value means the route was mounted without the auth middleware or the
// token carried no org claim.
func (h *Handler) requireOrg(w http.ResponseWriter, ctx context.Context) (id.OrgID, bool) {
	orgID := requestcontext.OrgID(ctx)
	if orgID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing organization identity"))
		return id.OrgID{}, false
	}
	return orgID, true
}

func (h *Handler) targetOrg(w http.ResponseWriter, r *http.Request) (id.OrgID, bool) {
	orgID, err := id.ParseOrgID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid organization id"))
		return id.OrgID{}, false
	}
	return orgID, true
}
