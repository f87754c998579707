package mockserver

import (
	"embed"
	"errors"
)

// Fixture file names served by the mock endpoints.
const (
	FixtureProfile        = "profile_response.json"
	FixtureAccounts       = "accounts_list_response.json"
	FixtureAccountDetail  = "account_detail_response.json"
	FixtureCheckins       = "account_checkins_response.json"
	FixtureCheckinCreated = "checkin_response_example.json"
	FixtureRoutes         = "routes_list_response.json"
	FixtureRouteDetail    = "route_detail_response.json"
	FixtureUsers          = "search_users_response.json"
)

// ErrFixtureNotFound is returned by sources that do not hold the requested fixture.
var ErrFixtureNotFound = errors.New("fixture not found")

//go:embed fixtures/*.json
var embedded embed.FS

// FixtureNames lists every fixture the mock server reads.
func FixtureNames() []string {
	return []string{
		FixtureProfile,
		FixtureAccounts,
		FixtureAccountDetail,
		FixtureCheckins,
		FixtureCheckinCreated,
		FixtureRoutes,
		FixtureRouteDetail,
		FixtureUsers,
	}
}
