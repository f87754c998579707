package mockserver_test

import (
	"bytes"
	"context"
	"net"
	"testing"

	"badger-probe/core/httpclient"
	"badger-probe/feature/mockserver"
	"badger-probe/feature/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serve(t *testing.T) string {
	t.Helper()
	app := newApp(t, mockserver.NewEmbeddedSource())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String() + mockserver.BasePath
}

func runSuite(t *testing.T, baseURL string) (string, *probe.Report) {
	t.Helper()
	client, err := httpclient.New(httpclient.Config{BaseURL: baseURL, TimeoutSeconds: 5}, zap.NewNop(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	runner := probe.NewRunner(client, &out, zap.NewNop(), probe.Options{Strict: true})
	report, err := runner.Run(context.Background(), probe.Catalog(probe.DefaultParams()))
	require.NoError(t, err, out.String())
	return out.String(), report
}

func TestProbeAgainstMockServer(t *testing.T) {
	baseURL := serve(t)

	first, report := runSuite(t, baseURL)
	assert.Empty(t, report.Failed())
	assert.Len(t, report.Results, 12)

	for _, line := range []string{
		"Testing GET /api/2/profile/\nStatus: 200\nUser: Jane Doe\nEmail: jane.doe@example.com\nCompany: Acme Field Sales\n",
		"Found 5 customers:\n  - John Smith (ID: 1001)\n  - Maria Garcia (ID: 1002)\n  - Wei Chen (ID: 1003)\n",
		"Customer: John Smith\nEmail: john.smith@example.com\nPhone: 555-0101\nLocations: 2\n",
		"Testing PATCH /api/2/customers/1001/\nStatus: 200\nUpdate successful!\nUpdated email: john.smith.updated@example.com\n",
		"Testing GET /api/2/appointments/?customer_id=1001\nStatus: 200\nFound 3 check-ins:\n",
		"Testing POST /api/2/appointments/\nStatus: 201\nCheck-in created successfully!\nCheck-in ID: 5001\nType: visit\n",
		"Found 2 routes:\n  - Monday Downtown on 2024-01-15\n",
		"Route: Monday Downtown\nDate: 2024-01-15\nWaypoints: 2\n",
		"Found 3 users matching 'john':\n",
		"Found 3 data fields:\n  - custom_numeric: Annual Revenue (float)\n",
		"Testing invalid endpoint\nStatus: 404\nError: Not Found\nMessage: Endpoint /api/2/invalid/ not found\n",
		"Testing missing customer_id parameter\nStatus: 400\nError: Bad Request\nMessage: customer_id parameter required\n",
		"All tests completed!",
	} {
		assert.Contains(t, first, line)
	}

	second, _ := runSuite(t, baseURL)
	assert.Equal(t, first, second)
}
