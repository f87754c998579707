package probe

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(checks []Check) []string {
	out := make([]string, len(checks))
	for i, c := range checks {
		out[i] = c.Name
	}
	return out
}

func TestCatalog_Order(t *testing.T) {
	assert.Equal(t, []string{
		"profile",
		"customers_list",
		"customer_detail",
		"customer_update",
		"checkins_list",
		"checkin_create",
		"routes_list",
		"route_detail",
		"user_search",
		"data_fields",
		"error_handling",
	}, names(Catalog(DefaultParams())))
}

func TestCatalog_StepsResolve(t *testing.T) {
	for _, c := range Catalog(DefaultParams()) {
		require.NotEmpty(t, c.Steps, c.Name)
		for _, s := range c.Steps {
			req, err := s.Request.Resolve()
			require.NoError(t, err, c.Name)
			assert.NotEmpty(t, req.Method, c.Name)
			assert.NotZero(t, s.Expect, c.Name)
			assert.NotNil(t, s.Render, c.Name)
		}
	}
}

func TestCatalog_Params(t *testing.T) {
	catalog := Catalog(Params{CustomerID: 7, RouteID: 9, Query: "ann"})
	byName := map[string]Check{}
	for _, c := range catalog {
		byName[c.Name] = c
	}

	req, err := byName["customer_detail"].Steps[0].Request.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/customers/7/", req.Path)

	req, err = byName["customer_update"].Steps[0].Request.Resolve()
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/customers/7/", req.Path)

	req, err = byName["route_detail"].Steps[0].Request.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/routes/9/", req.Path)

	req, err = byName["checkins_list"].Steps[0].Request.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "7", req.Query.Get("customer_id"))

	req, err = byName["user_search"].Steps[0].Request.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "ann", req.Query.Get("q"))

	create := byName["checkin_create"].Steps[0]
	assert.Equal(t, http.StatusCreated, create.Expect)
	body, ok := create.Request.Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 7, body["customer"])

	errs := byName["error_handling"]
	assert.Equal(t, "Testing error handling...", errs.Heading)
	require.Len(t, errs.Steps, 2)
	assert.Equal(t, http.StatusNotFound, errs.Steps[0].Expect)
	assert.Equal(t, http.StatusBadRequest, errs.Steps[1].Expect)
	assert.Empty(t, errs.Steps[1].Request.Query)
}

func TestSelect(t *testing.T) {
	catalog := Catalog(DefaultParams())

	t.Run("Empty", func(t *testing.T) {
		selected, err := Select(catalog, nil)
		require.NoError(t, err)
		assert.Len(t, selected, len(catalog))
	})

	t.Run("CatalogOrder", func(t *testing.T) {
		selected, err := Select(catalog, []string{"route_detail", "PROFILE"})
		require.NoError(t, err)
		assert.Equal(t, []string{"profile", "route_detail"}, names(selected))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Select(catalog, []string{"profile", "nope", "bogus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope, bogus")
	})
}

func TestOutput_Take(t *testing.T) {
	var buf strings.Builder
	out := NewOutput(&buf)
	out.Printf("a %d", 1)
	out.Blank()
	out.Printf("b")

	assert.Equal(t, []string{"a 1", "b"}, out.Take())
	assert.Empty(t, out.Take())
	assert.Equal(t, "a 1\n\nb\n", buf.String())
}
