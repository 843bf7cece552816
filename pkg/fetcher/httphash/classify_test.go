package httphash_test

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"vdpscanner/pkg/fetcher/httphash"
	"vdpscanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind serrors.Kind
	}{
		{
			name: "unknown authority",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: x509.UnknownAuthorityError{}},
			kind: serrors.ErrTLS,
		},
		{
			name: "hostname mismatch",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: x509.HostnameError{Host: "a.gov"}},
			kind: serrors.ErrTLS,
		},
		{
			name: "handshake message",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: errors.New("tls: server selected unsupported protocol version 300")},
			kind: serrors.ErrTLS,
		},
		{
			name: "read timeout is not a handshake failure",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: &net.OpError{Op: "read", Net: "tcp", Err: os.ErrDeadlineExceeded}},
			kind: serrors.ErrTimeout,
		},
		{
			name: "deadline exceeded",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: context.DeadlineExceeded},
			kind: serrors.ErrTimeout,
		},
		{
			name: "dns timeout",
			err:  &net.DNSError{Err: "i/o timeout", Name: "a.gov", IsTimeout: true},
			kind: serrors.ErrTimeout,
		},
		{
			name: "no such host",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: &net.DNSError{Err: "no such host", Name: "a.gov", IsNotFound: true}},
			kind: serrors.ErrConnection,
		},
		{
			name: "connection refused",
			err:  &url.Error{Op: "Get", URL: "https://a.gov", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}},
			kind: serrors.ErrConnection,
		},
		{
			name: "connection reset",
			err:  syscall.ECONNRESET,
			kind: serrors.ErrConnection,
		},
		{
			name: "anything else",
			err:  errors.New("malformed response"),
			kind: serrors.ErrInternal,
		},
		{
			name: "already classified",
			err:  serrors.With(serrors.ErrTimeout, "slow"),
			kind: serrors.ErrTimeout,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := httphash.Classify(tc.err)
			require.Error(t, err)
			require.Equal(t, tc.kind, serrors.KindOf(err))
			require.ErrorIs(t, err, tc.err)
		})
	}

	require.NoError(t, httphash.Classify(nil))
}
