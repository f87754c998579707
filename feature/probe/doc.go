// Package probe is the endpoint exerciser.
//
// A Check is a named, self-contained exercise of one logical endpoint of the BadgerMaps API:
// profile, customers, check-ins, routes, user search, data fields, and the two error paths.
// Each Step builds a Request from a path template, query parameters or a JSON body, sends
// it through core/httpclient, and prints a short summary:
//
//	Testing GET /api/2/profile/
//	Status: 200
//	User: Jane Doe
//	Email: jane@x.com
//	Company: Acme
//
// The status line is printed unconditionally. The body is parsed only when the status is
// the one the step expects; any other status is reported and skipped. Field access is
// tolerant: absent values print as "null" and absent lists have length 0.
//
// Checks run strictly in order. A connectivity failure or an undecodable success body stops
// the run. In strict mode a status mismatch or an absent field marks the step failed and
// the run ends with ErrChecksFailed.
package probe
