// internal/endpoint/classify.go
//
// Contact endpoint – transport failure classification.
//
//------------------------------------------------------------------------------

package endpoint

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
)

// Failure is the coarse reason a request never completed.
type Failure int

const (
	FailureUnexpected  Failure = iota // anything not matched below
	FailureOffline                    // name resolution failed
	FailureUnreachable                // dial refused, reset, or unroutable
	FailureTimeout                    // deadline exceeded
	FailureBlocked                    // TLS, certificate, or redirect policy rejected the server
)

func (f Failure) String() string {
	switch f {
	case FailureOffline:
		return "offline"
	case FailureUnreachable:
		return "unreachable"
	case FailureTimeout:
		return "timeout"
	case FailureBlocked:
		return "blocked"
	default:
		return "unexpected"
	}
}

// Message is the toast text shown for f.
func (f Failure) Message() string {
	switch f {
	case FailureOffline:
		return "Network error. Please check your internet connection."
	case FailureUnreachable:
		return "Failed to connect to server. Please check your connection."
	case FailureTimeout:
		return "Request timed out. Please try again."
	case FailureBlocked:
		return "CORS error. Please contact support."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// Classify inspects err (typically a *url.Error from Send) and returns the
// matching Failure.  Checks run from most to least specific.
func Classify(err error) Failure {
	if err == nil {
		return FailureUnexpected
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureOffline
	}

	if errors.Is(err, ErrCrossOriginRedirect) || isTLSRejection(err) {
		return FailureBlocked
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureUnreachable
	}

	return FailureUnexpected
}

func isTLSRejection(err error) bool {
	var (
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		authErr     x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidCert x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidCert)
}
