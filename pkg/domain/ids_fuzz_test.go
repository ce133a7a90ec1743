package domain

import (
	"testing"

	"github.com/google/uuid"
)

// FuzzParseOrgID checks that parsing never panics on arbitrary input and
// returns either a valid ID or an error, never both.
func FuzzParseOrgID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE onboardings;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		orgID, err := ParseOrgID(input)
		if err != nil {
			if !orgID.IsZero() {
				t.Errorf("ParseOrgID(%q) returned both an ID and an error", input)
			}
			return
		}
		if uuid.UUID(orgID) == uuid.Nil {
			t.Errorf("ParseOrgID(%q) accepted the nil UUID", input)
		}
		if _, reparseErr := ParseOrgID(orgID.String()); reparseErr != nil {
			t.Errorf("ParseOrgID(%q) produced an ID that fails to reparse", input)
		}
	})
}
