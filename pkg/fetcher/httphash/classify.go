package httphash

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	"vdpscanner/pkg/serrors"
)

// Classify maps a transport error to exactly one of the fetch failure kinds.
// Certificate and handshake failures take precedence over timeouts, which in
// turn take precedence over connection failures. Errors that already carry a
// kind are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if serrors.KindOf(err) != nil {
		return err
	}

	switch {
	case isTLSError(err):
		return serrors.Wrap(serrors.ErrTLS, err, "tls failure")
	case isTimeout(err):
		return serrors.Wrap(serrors.ErrTimeout, err, "timed out")
	case isConnectionError(err):
		return serrors.Wrap(serrors.ErrConnection, err, "connection failure")
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "fetch failure")
	}
}

// errPlainHTTP is the message net/http reports when a TLS handshake is answered
// with a plain HTTP response.
const errPlainHTTP = "http: server gave HTTP response to HTTPS client"

func isTLSError(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
		verification     *tls.CertificateVerificationError
		recordHeader     tls.RecordHeaderError
		alert            tls.AlertError
		opErr            *net.OpError
	)

	if errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalid) ||
		errors.As(err, &verification) ||
		errors.As(err, &recordHeader) ||
		errors.As(err, &alert) {
		return true
	}

	// Alerts sent or received over TCP are reported as *net.OpError with an
	// unexported alert type.
	if errors.As(err, &opErr) && (opErr.Op == "remote error" || opErr.Op == "local error") {
		return true
	}

	return isHandshakeMessage(err)
}

// isHandshakeMessage walks the chain looking for the plain errors crypto/tls
// and net/http return for protocol level handshake failures.
func isHandshakeMessage(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		msg := err.Error()
		if strings.HasPrefix(msg, "tls: ") || msg == errPlainHTTP {
			return true
		}
	}

	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)

	return errors.As(err, &dnsErr) ||
		errors.As(err, &opErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}
