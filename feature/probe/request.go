package probe

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"badger-probe/core/httpclient"
)

// Request describes one call relative to the base URL.
type Request struct {
	Method string
	// Path is a template such as "/customers/{id}/"; placeholders come from PathParams.
	Path       string
	PathParams map[string]string
	Query      map[string]string
	// Body is sent as JSON when non-nil.
	Body any
}

// Resolve fills the path template and converts the descriptor for the transport.
func (r Request) Resolve() (*httpclient.Request, error) {
	path := r.Path
	keys := make([]string, 0, len(r.PathParams))
	for k := range r.PathParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path = strings.ReplaceAll(path, "{"+k+"}", r.PathParams[k])
	}
	if strings.Contains(path, "{") {
		return nil, fmt.Errorf("unresolved path parameter in %q", path)
	}

	var query url.Values
	if len(r.Query) > 0 {
		query = url.Values{}
		for k, v := range r.Query {
			query.Set(k, v)
		}
	}

	return &httpclient.Request{
		Method: r.Method,
		Path:   path,
		Query:  query,
		JSON:   r.Body,
	}, nil
}

// RawQuery renders Query unescaped with sorted keys, the way step labels show it.
func (r Request) RawQuery() string {
	keys := make([]string, 0, len(r.Query))
	for k := range r.Query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+r.Query[k])
	}
	return strings.Join(pairs, "&")
}
