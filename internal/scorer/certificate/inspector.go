package certificate

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"phishguard/pkg/serrors"
	"strings"
	"time"
)

// TLSInspector performs a TLS handshake and reads the leaf certificate.
// Chain verification is disabled so that invalid certificates, which are the
// interesting ones, can still be inspected.
type TLSInspector struct {
	timeout time.Duration
}

var _ Inspector = (*TLSInspector)(nil)

// NewTLSInspector creates an inspector whose handshakes are bounded by timeout.
func NewTLSInspector(timeout time.Duration) *TLSInspector {
	return &TLSInspector{timeout: timeout}
}

func (i *TLSInspector) Inspect(ctx context.Context, host, port string) (*Certificate, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true, //nolint: gosec
			MinVersion:         tls.VersionTLS10,
		},
	}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "tls handshake with %s timed out", host)
		}

		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not complete tls handshake with %s", host)
	}
	defer func() {
		_ = conn.Close()
	}()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		return nil, serrors.With(serrors.ErrInternal, "unexpected connection type %T", conn)
	}
	state := tlsConn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, serrors.With(serrors.ErrFetch, "%s presented no certificate", host)
	}
	leaf := state.PeerCertificates[0]

	return &Certificate{
		Issuer:        issuerName(leaf),
		NotBefore:     leaf.NotBefore,
		NotAfter:      leaf.NotAfter,
		HostnameMatch: leaf.VerifyHostname(host) == nil,
	}, nil
}

func issuerName(cert *x509.Certificate) string {
	parts := append([]string{}, cert.Issuer.Organization...)
	if cert.Issuer.CommonName != "" {
		parts = append(parts, cert.Issuer.CommonName)
	}

	return strings.Join(parts, " ")
}
