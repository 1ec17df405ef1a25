package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify remote failures. The hosting API contract only
// distinguishes "the server answered with a bad status" from "we never got an
// answer"; callers must not branch on anything finer.
var (
	// TagRemoteStatus marks a non-2xx response from a remote API
	TagRemoteStatus = goerr.NewTag("remote_status")

	// TagTransport marks a transport-level failure (DNS, connect, timeout)
	TagTransport = goerr.NewTag("transport")
)
