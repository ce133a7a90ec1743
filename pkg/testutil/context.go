package testutil

import (
	"net/http"

	id "clubraise/pkg/domain"
	"clubraise/pkg/requestcontext"
)

// WithOrg adds an organization ID and acting member to the request context,
// simulating what the auth middleware does for authenticated requests.
// An invalid org ID is silently ignored.
func WithOrg(req *http.Request, orgID, member string) *http.Request {
	ctx := req.Context()
	if parsed, err := id.ParseOrgID(orgID); err == nil {
		ctx = requestcontext.WithOrgID(ctx, parsed)
	}
	if member != "" {
		ctx = requestcontext.WithActor(ctx, member)
	}
	return req.WithContext(ctx)
}

// WithAdminToken sets the admin token header on the request.
func WithAdminToken(req *http.Request, token string) *http.Request {
	req.Header.Set("X-Admin-Token", token)
	return req
}
