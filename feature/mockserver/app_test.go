package mockserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"badger-probe/feature/mockserver"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(t *testing.T, src mockserver.Source) *fiber.App {
	t.Helper()
	app, err := mockserver.NewApp(src, zap.NewNop())
	require.NoError(t, err)
	return app
}

func call(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded), string(data))
	}
	return resp, decoded
}

func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func list(t *testing.T, v any) []any {
	t.Helper()
	l, ok := v.([]any)
	require.True(t, ok, "expected list, got %T", v)
	return l
}

func TestApp_Profile(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	for _, path := range []string{"/api/2/profile/", "/api/2/profiles/"} {
		resp, body := call(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		profile := object(t, body)
		assert.Equal(t, "Jane", profile["first_name"])
		assert.Equal(t, "Acme Field Sales", object(t, profile["company"])["name"])
	}

	resp, body := call(t, app, http.MethodGet, "/api/2/datafields/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fields := list(t, body)
	require.Len(t, fields, 3)
	assert.Equal(t, "custom_numeric", object(t, fields[0])["name"])
}

func TestApp_Customers(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	t.Run("List", func(t *testing.T) {
		resp, body := call(t, app, http.MethodGet, "/api/2/customers/", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, list(t, body), 5)
	})

	t.Run("DetailRewritesIDs", func(t *testing.T) {
		resp, body := call(t, app, http.MethodGet, "/api/2/customers/42/", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		customer := object(t, body)
		assert.Equal(t, float64(42), customer["id"])
		locations := list(t, customer["locations"])
		require.Len(t, locations, 2)
		assert.Equal(t, float64(42001), object(t, locations[0])["id"])
		assert.Equal(t, float64(42002), object(t, locations[1])["id"])
	})

	t.Run("NonNumericIDKeepsFixture", func(t *testing.T) {
		_, body := call(t, app, http.MethodGet, "/api/2/customers/abc/", "")
		assert.Equal(t, float64(1001), object(t, body)["id"])
	})

	t.Run("Update", func(t *testing.T) {
		resp, body := call(t, app, http.MethodPatch, "/api/2/customers/1001/",
			`{"email":"new@example.com","last_name":"","notes":null,"custom_text":"Updated"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		customer := object(t, body)
		assert.Equal(t, "new@example.com", customer["email"])
		assert.Equal(t, "Smith", customer["last_name"])
		assert.Equal(t, "Prefers morning visits", customer["notes"])
		assert.Equal(t, "Updated", customer["custom_text"])
		assert.Equal(t, time.Now().Format("2006-01-02"), customer["last_modified_date"])
	})

	t.Run("UpdateViaPost", func(t *testing.T) {
		resp, body := call(t, app, http.MethodPost, "/api/2/customers/7/", `{"first_name":"Ann"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Ann", object(t, body)["first_name"])
		assert.Equal(t, float64(7), object(t, body)["id"])
	})

	t.Run("UpdateInvalidJSON", func(t *testing.T) {
		resp, body := call(t, app, http.MethodPatch, "/api/2/customers/1001/", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errBody := object(t, body)
		assert.Equal(t, "Bad Request", errBody["error"])
		assert.Equal(t, float64(400), errBody["status_code"])
	})
}

func TestApp_Appointments(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	t.Run("MissingCustomerID", func(t *testing.T) {
		resp, body := call(t, app, http.MethodGet, "/api/2/appointments/", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, map[string]any{
			"error":       "Bad Request",
			"message":     "customer_id parameter required",
			"status_code": float64(400),
		}, body)
	})

	t.Run("List", func(t *testing.T) {
		resp, body := call(t, app, http.MethodGet, "/api/2/appointments/?customer_id=7", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		checkins := list(t, body)
		require.Len(t, checkins, 3)
		for _, c := range checkins {
			assert.Equal(t, float64(7), object(t, c)["customer"])
		}
	})

	t.Run("ListTrimsCustomerID", func(t *testing.T) {
		_, body := call(t, app, http.MethodGet, "/api/2/appointments/?customer_id=%2012", "")
		for _, c := range list(t, body) {
			assert.Equal(t, float64(12), object(t, c)["customer"])
		}
	})

	t.Run("Create", func(t *testing.T) {
		resp, body := call(t, app, http.MethodPost, "/api/2/appointments/",
			`{"customer":1001,"type":"phone","comments":"hi","ignored":"x"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		checkin := object(t, body)
		assert.Equal(t, float64(5001), checkin["id"])
		assert.Equal(t, "phone", checkin["type"])
		assert.Equal(t, "hi", checkin["comments"])
		assert.Equal(t, "2024-01-15T16:00:00Z", checkin["log_datetime"])
		assert.NotContains(t, checkin, "ignored")
	})
}

func TestApp_Routes(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	resp, body := call(t, app, http.MethodGet, "/api/2/routes/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list(t, body), 2)

	resp, body = call(t, app, http.MethodGet, "/api/2/routes/4001/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	route := object(t, body)
	assert.Equal(t, float64(4001), route["id"])
	waypoints := list(t, route["waypoints"])
	require.Len(t, waypoints, 2)
	assert.Equal(t, float64(4001001), object(t, waypoints[0])["id"])
	assert.Equal(t, float64(4001002), object(t, waypoints[1])["id"])
}

func TestApp_SearchUsers(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"FirstNameOrUsername", "john", 3},
		{"CaseInsensitive", "JANE", 1},
		{"NoMatch", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := call(t, app, http.MethodGet, "/api/2/search/users/?q="+tt.query, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Len(t, list(t, body), tt.want)
		})
	}

	t.Run("MissingQuery", func(t *testing.T) {
		resp, body := call(t, app, http.MethodGet, "/api/2/search/users/", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "query parameter 'q' required", object(t, body)["message"])
	})
}

func TestApp_NotFound(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	for _, target := range []string{"/api/2/invalid/", "/elsewhere"} {
		resp, body := call(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, map[string]any{
			"error":       "Not Found",
			"message":     "Endpoint " + target + " not found",
			"status_code": float64(404),
		}, body)
	}

	resp, _ := call(t, app, http.MethodDelete, "/api/2/customers/1001/", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApp_CORSAndRayID(t *testing.T) {
	app := newApp(t, mockserver.NewEmbeddedSource())

	req := httptest.NewRequest(http.MethodOptions, "/api/2/customers/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH")

	req = httptest.NewRequest(http.MethodGet, "/api/2/profile/", nil)
	req.Header.Set("X-Ray-ID", "trace-1")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "trace-1", resp.Header.Get("X-Ray-ID"))
}

func TestApp_FeaturesLoaded(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := mockserver.NewApp(mockserver.NewEmbeddedSource(), zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("Features loaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t,
		[]any{"profile", "accounts", "appointments", "routes", "search"},
		entries[0].ContextMap()["features"])
}

func TestApp_MissingFixture(t *testing.T) {
	app := newApp(t, mockserver.NewDirSource(t.TempDir()))

	resp, body := call(t, app, http.MethodGet, "/api/2/profile/", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := object(t, body)
	assert.Equal(t, "Internal Server Error", errBody["error"])
	assert.Contains(t, errBody["message"], "fixture not found")
}
