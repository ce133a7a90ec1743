package handler

import (
	"time"

	"clubraise/internal/entity/models"
	"clubraise/internal/entity/service"
)

// StatusResponse is the body of GET /onboarding/status and of the
// state-changing onboarding endpoints.
type StatusResponse struct {
	Category       string `json:"category,omitempty"`
	Status         string `json:"status"`
	RejectionNotes string `json:"rejection_notes,omitempty"`
	CanProceed     bool   `json:"can_proceed"`
	NextStep       string `json:"next_step,omitempty"`
	BlockedReason  string `json:"blocked_reason,omitempty"`
}

func statusResponse(v *service.StatusView) StatusResponse {
	out := StatusResponse{
		Status:         string(v.Status),
		RejectionNotes: v.RejectionNotes,
		CanProceed:     v.Progress.Allowed,
		NextStep:       v.Progress.NextStepHint,
		BlockedReason:  v.Progress.BlockedReason,
	}
	if v.Category != nil {
		out.Category = string(*v.Category)
	}
	return out
}

// CompletenessItemResponse mirrors one checklist row of the completeness
// report.
type CompletenessItemResponse struct {
	Label    string `json:"label"`
	Complete bool   `json:"complete"`
	Optional bool   `json:"optional,omitempty"`
}

type CompletenessResponse struct {
	Percent int                        `json:"percent"`
	Items   []CompletenessItemResponse `json:"items"`
}

func completenessResponse(r models.CompletenessReport) CompletenessResponse {
	out := CompletenessResponse{Percent: r.Percent}
	for _, item := range r.Items {
		out.Items = append(out.Items, CompletenessItemResponse{
			Label:    item.Label,
			Complete: item.Complete,
			Optional: item.Optional,
		})
	}
	return out
}

// EntityDetailsResponse flattens the stored record into the same shape the
// request payload uses, with registration fields prefixed by jurisdiction.
type EntityDetailsResponse struct {
	ID           string   `json:"id"`
	OrgID        string   `json:"org_id"`
	LegalName    string   `json:"legal_name"`
	TradingNames []string `json:"trading_names,omitempty"`
	Description  string   `json:"description,omitempty"`
	FoundedYear  *int     `json:"founded_year,omitempty"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	County       string `json:"county,omitempty"`
	PostalCode   string `json:"postal_code"`
	Jurisdiction string `json:"jurisdiction"`

	LegalStructure string `json:"legal_structure"`

	IECRONumber          *string `json:"ie_cro_number,omitempty"`
	IECharityCHY         *string `json:"ie_charity_chy,omitempty"`
	IECharityRCN         *string `json:"ie_charity_rcn,omitempty"`
	IEApprovedSportsBody *bool   `json:"ie_approved_sports_body,omitempty"`

	UKCompanyNumber          *string `json:"uk_company_number,omitempty"`
	UKCharityEnglandWales    *string `json:"uk_charity_england_wales,omitempty"`
	UKCharityScotland        *string `json:"uk_charity_scotland,omitempty"`
	UKCharityNorthernIreland *string `json:"uk_charity_northern_ireland,omitempty"`
	UKCASCRegistered         *bool   `json:"uk_casc_registered,omitempty"`

	RegistrationVerified bool       `json:"registration_verified"`
	VerificationNotes    string     `json:"verification_notes,omitempty"`
	VerifiedAt           *time.Time `json:"verified_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func entityDetailsResponse(d *models.EntityDetails) EntityDetailsResponse {
	out := EntityDetailsResponse{
		ID:                   d.ID.String(),
		OrgID:                d.OrgID.String(),
		LegalName:            d.LegalName,
		TradingNames:         d.TradingNames,
		Description:          d.Description,
		FoundedYear:          d.FoundedYear,
		AddressLine1:         d.Address.Line1,
		AddressLine2:         d.Address.Line2,
		City:                 d.Address.City,
		County:               d.Address.County,
		PostalCode:           d.Address.PostalCode,
		Jurisdiction:         string(d.Jurisdiction),
		LegalStructure:       string(d.LegalStructure),
		RegistrationVerified: d.RegistrationVerified,
		VerificationNotes:    d.VerificationNotes,
		VerifiedAt:           d.VerifiedAt,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
	if ie := d.Registration.Ireland; ie != nil {
		out.IECRONumber = ie.CRONumber
		out.IECharityCHY = ie.CharityCHY
		out.IECharityRCN = ie.CharityRCN
		if ie.ApprovedSportsBody {
			v := true
			out.IEApprovedSportsBody = &v
		}
	}
	if uk := d.Registration.UK; uk != nil {
		out.UKCompanyNumber = uk.CompanyNumber
		out.UKCharityEnglandWales = uk.CharityEnglandWales
		out.UKCharityScotland = uk.CharityScotland
		out.UKCharityNorthernIreland = uk.CharityNorthernIreland
		if uk.CASCRegistered {
			v := true
			out.UKCASCRegistered = &v
		}
	}
	return out
}

// EntityDetailsViewResponse wraps the record with its completeness report
// and the onboarding position for GET /onboarding/entity-details.
type EntityDetailsViewResponse struct {
	Details      EntityDetailsResponse `json:"details"`
	Completeness CompletenessResponse  `json:"completeness"`
	Status       string                `json:"status"`
	CanProceed   bool                  `json:"can_proceed"`
	NextStep     string                `json:"next_step,omitempty"`
}

func detailsViewResponse(v *service.DetailsView) EntityDetailsViewResponse {
	return EntityDetailsViewResponse{
		Details:      entityDetailsResponse(v.Details),
		Completeness: completenessResponse(v.Completeness),
		Status:       string(v.Status),
		CanProceed:   v.Progress.Allowed,
		NextStep:     v.Progress.NextStepHint,
	}
}
