// Package httpclient is the blocking HTTP transport used by the exerciser.
//
// A Client is bound to one base URL. Requests carry a path relative to that URL, optional
// query parameters and an optional JSON body; responses are read fully before Do returns.
// There are no retries. Failures to reach the server wrap ErrUnreachable so the caller can
// abort the run with a connectivity diagnostic.
package httpclient
