package tools

import (
	"errors"

	"github.com/monarch-agent/monarch-mcp/pkg/monarch"
)

// Failure kinds carried in the result envelope. Clients branch on the
// kind, so the set is small and stable.
const (
	KindInvalidArgument = "invalid_argument"
	KindAuthRequired    = "auth_required"
	KindMFARequired     = "mfa_required"
	KindUpstreamError   = "upstream_error"
)

// Envelope is the uniform result shape every tool returns. Exactly one
// of Result and Error is set.
type Envelope struct {
	OK     bool        `json:"ok" jsonschema:"Whether the call succeeded"`
	Result interface{} `json:"result,omitempty" jsonschema:"Tool result payload, present on success"`
	Error  *ToolError  `json:"error,omitempty" jsonschema:"Failure details, present on error"`
}

// ToolError describes a failed tool call.
type ToolError struct {
	Kind    string `json:"kind" jsonschema:"Failure kind: invalid_argument, auth_required, mfa_required or upstream_error"`
	Message string `json:"message" jsonschema:"Human-readable description of the failure"`
}

func success(result interface{}) Envelope {
	return Envelope{OK: true, Result: result}
}

func failure(kind, message string) Envelope {
	return Envelope{OK: false, Error: &ToolError{Kind: kind, Message: message}}
}

func invalidArgument(message string) Envelope {
	return failure(KindInvalidArgument, message)
}

// classify maps an error from the session manager or the API client
// onto a failure envelope.
func classify(err error) Envelope {
	switch {
	case errors.Is(err, monarch.ErrMFARequired):
		return failure(KindMFARequired, "multi-factor authentication required: set MONARCH_MFA_SECRET")
	case monarch.IsAuthError(err):
		return failure(KindAuthRequired, err.Error())
	default:
		msg := err.Error()
		if monarch.IsRetryable(err) {
			msg = "temporary upstream failure: " + msg
		}
		return failure(KindUpstreamError, msg)
	}
}

// isSessionRejected reports whether the API refused the installed
// session, meaning it should be dropped before the next call.
func isSessionRejected(err error) bool {
	return errors.Is(err, monarch.ErrNotAuthenticated) || errors.Is(err, monarch.ErrSessionExpired)
}
