package certificate

import (
	"context"
	"time"
)

// Certificate is the subset of a leaf certificate that carries risk signals.
type Certificate struct {
	// Issuer is the issuer organization and common name.
	Issuer    string
	NotBefore time.Time
	NotAfter  time.Time
	// HostnameMatch reports whether the certificate is valid for the host it was served for.
	HostnameMatch bool
}

// Inspector retrieves the certificate served for a host.
//
//go:generate mockgen -package mockcertificate -source=interface.go -destination=mock/mockcertificate.go *
type Inspector interface {
	Inspect(ctx context.Context, host, port string) (*Certificate, error)
}
