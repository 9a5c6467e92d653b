package failure

import (
	"context"
	stderrors "errors"
	"net"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind string

const (
	Generic               Kind = "generic"
	MissingCredentials    Kind = "missing_credentials"
	DependencyUnavailable Kind = "dependency_unavailable"
	ConnectionFailure     Kind = "connection_failure"
	QuotaExceeded         Kind = "quota_exceeded"
	InvalidCredential     Kind = "invalid_credential"
	MessageMissing        Kind = "message_missing"
)

// Error is raised by the remote client wrappers so callers never inspect error text.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + string(e.Kind)
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause walk through us.
func (e *Error) Cause() error { return e.Err }

// New wraps err with a kind and a stack trace.
func New(kind Kind, op string, err error) error {
	if err != nil {
		err = errors.WithStack(err)
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func Newf(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: errors.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost *Error in the chain, or Generic.
func KindOf(err error) Kind {
	var fe *Error
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return Generic
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Classify types an error that arrived without a kind. Typed errors keep their
// kind. The text fallback only covers providers whose SDK has no error struct.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if stderrors.As(err, &fe) {
		return err
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) || stderrors.Is(err, context.DeadlineExceeded) {
		return New(ConnectionFailure, op, err)
	}

	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "insufficient_quota") || strings.Contains(text, "429"):
		return New(QuotaExceeded, op, err)
	case strings.Contains(text, "invalid_api_key"):
		return New(InvalidCredential, op, err)
	}
	return New(Generic, op, err)
}

// FromHTTPStatus maps a provider HTTP status to a kind.
func FromHTTPStatus(code int) Kind {
	switch {
	case code == 429:
		return QuotaExceeded
	case code == 401 || code == 403:
		return InvalidCredential
	case code >= 500:
		return ConnectionFailure
	}
	return Generic
}

// FromGrpcError maps a gRPC status carried by err. ok is false for non-status errors.
func FromGrpcError(err error) (Kind, bool) {
	s, ok := status.FromError(err)
	if !ok || s.Code() == codes.Unknown {
		return Generic, false
	}
	switch s.Code() {
	case codes.ResourceExhausted:
		return QuotaExceeded, true
	case codes.Unauthenticated, codes.PermissionDenied:
		return InvalidCredential, true
	case codes.Unavailable, codes.DeadlineExceeded:
		return ConnectionFailure, true
	}
	return Generic, true
}
