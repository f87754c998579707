package probe

import (
	"net/http"
	"strconv"
)

// Catalog returns every check in the order they run.
func Catalog(p Params) []Check {
	customerID := strconv.Itoa(p.CustomerID)
	routeID := strconv.Itoa(p.RouteID)

	return []Check{
		{
			Name: "profile",
			Steps: []Step{{
				Request: Request{Method: http.MethodGet, Path: "/profile/"},
				Expect:  http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("User: %s %s", b.Str("first_name"), b.Str("last_name"))
					out.Printf("Email: %s", b.Str("email"))
					out.Printf("Company: %s", b.Str("company.name"))
				},
			}},
		},
		{
			Name: "customers_list",
			Steps: []Step{{
				Request: Request{Method: http.MethodGet, Path: "/customers/"},
				Expect:  http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Found %d customers:", b.Len(""))
					for _, c := range b.Items("", 3) {
						out.Printf("  - %s %s (ID: %s)", c.Str("first_name"), c.Str("last_name"), c.Str("id"))
					}
				},
			}},
		},
		{
			Name: "customer_detail",
			Steps: []Step{{
				Request: Request{
					Method:     http.MethodGet,
					Path:       "/customers/{id}/",
					PathParams: map[string]string{"id": customerID},
				},
				Expect: http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Customer: %s %s", b.Str("first_name"), b.Str("last_name"))
					out.Printf("Email: %s", b.Str("email"))
					out.Printf("Phone: %s", b.Str("phone_number"))
					out.Printf("Locations: %d", b.Len("locations"))
				},
			}},
		},
		{
			Name: "customer_update",
			Steps: []Step{{
				Request: Request{
					Method:     http.MethodPatch,
					Path:       "/customers/{id}/",
					PathParams: map[string]string{"id": customerID},
					Body: map[string]any{
						"first_name":  "John",
						"last_name":   "Smith",
						"email":       "john.smith.updated@example.com",
						"custom_text": "Updated via API test",
					},
				},
				Expect: http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Update successful!")
					out.Printf("Updated email: %s", b.Str("email"))
				},
			}},
		},
		{
			Name: "checkins_list",
			Steps: []Step{{
				Request: Request{
					Method: http.MethodGet,
					Path:   "/appointments/",
					Query:  map[string]string{"customer_id": customerID},
				},
				Expect: http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Found %d check-ins:", b.Len(""))
					for _, c := range b.Items("", 3) {
						out.Printf("  - %s on %s", c.Str("type"), c.Str("log_datetime"))
					}
				},
			}},
		},
		{
			Name: "checkin_create",
			Steps: []Step{{
				Request: Request{
					Method: http.MethodPost,
					Path:   "/appointments/",
					Body: map[string]any{
						"customer":     p.CustomerID,
						"log_datetime": "2024-01-15T16:00:00Z",
						"type":         "visit",
						"comments":     "Test check-in created via API",
						"extra_fields": `{"duration": "30", "test": true}`,
						"created_by":   "test@example.com",
					},
				},
				Expect: http.StatusCreated,
				Render: func(out *Output, b Body) {
					out.Printf("Check-in created successfully!")
					out.Printf("Check-in ID: %s", b.Str("id"))
					out.Printf("Type: %s", b.Str("type"))
				},
			}},
		},
		{
			Name: "routes_list",
			Steps: []Step{{
				Request: Request{Method: http.MethodGet, Path: "/routes/"},
				Expect:  http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Found %d routes:", b.Len(""))
					for _, r := range b.Items("", 3) {
						out.Printf("  - %s on %s", r.Str("name"), r.Str("route_date"))
					}
				},
			}},
		},
		{
			Name: "route_detail",
			Steps: []Step{{
				Request: Request{
					Method:     http.MethodGet,
					Path:       "/routes/{id}/",
					PathParams: map[string]string{"id": routeID},
				},
				Expect: http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Route: %s", b.Str("name"))
					out.Printf("Date: %s", b.Str("route_date"))
					out.Printf("Waypoints: %d", b.Len("waypoints"))
				},
			}},
		},
		{
			Name: "user_search",
			Steps: []Step{{
				Request: Request{
					Method: http.MethodGet,
					Path:   "/search/users/",
					Query:  map[string]string{"q": p.Query},
				},
				Expect: http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Found %d users matching '%s':", b.Len(""), p.Query)
					for _, u := range b.Items("", -1) {
						out.Printf("  - %s (%s)", u.Str("first_name"), u.Str("username"))
					}
				},
			}},
		},
		{
			Name: "data_fields",
			Steps: []Step{{
				Request: Request{Method: http.MethodGet, Path: "/datafields/"},
				Expect:  http.StatusOK,
				Render: func(out *Output, b Body) {
					out.Printf("Found %d data fields:", b.Len(""))
					for _, f := range b.Items("", -1) {
						out.Printf("  - %s: %s (%s)", f.Str("name"), f.Str("label"), f.Str("type"))
					}
				},
			}},
		},
		{
			Name:    "error_handling",
			Heading: "Testing error handling...",
			Steps: []Step{
				{
					Label:   "invalid endpoint",
					Request: Request{Method: http.MethodGet, Path: "/invalid/"},
					Expect:  http.StatusNotFound,
					Render:  renderError,
				},
				{
					Label:   "missing customer_id parameter",
					Request: Request{Method: http.MethodGet, Path: "/appointments/"},
					Expect:  http.StatusBadRequest,
					Render:  renderError,
				},
			},
		},
	}
}

func renderError(out *Output, b Body) {
	out.Printf("Error: %s", b.Str("error"))
	out.Printf("Message: %s", b.Str("message"))
}
