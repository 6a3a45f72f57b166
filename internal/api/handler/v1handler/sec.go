package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"phishguard/internal/config"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// CtxKey is used for values stored in request contexts by this package.
type CtxKey string

// ClientIDKey is the context key of the authenticated domain.ClientID.
const ClientIDKey CtxKey = "clientID"

// accessTokenParam carries the token of websocket upgrades, which browsers
// cannot send headers with.
const accessTokenParam = "access_token"

// SecHandlerOptions configures bearer authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying tokens. Authentication
	// is disabled when empty.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens whose subject is a client ID.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are verified.
func (s SecHandler) Enabled() bool { return s.key != nil }

// HandleBearerAuth verifies token and stores its client ID in the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.key == nil {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, ClientIDKey, domain.ClientID(id))
	ctx = logger.WithFields(ctx, zap.String(string(ClientIDKey), id.String()))

	return ctx, nil
}

// Middleware authenticates every request passing through it.
func (s SecHandler) Middleware(h Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.Enabled() {
				next.ServeHTTP(w, r)

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), bearerToken(r))
			if err != nil {
				h.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get(accessTokenParam)
	}

	return ""
}

// GetClientIDFromContext returns the authenticated client, or the zero
// ClientID when authentication is disabled.
func GetClientIDFromContext(ctx context.Context) domain.ClientID {
	id, _ := ctx.Value(ClientIDKey).(domain.ClientID)

	return id
}
