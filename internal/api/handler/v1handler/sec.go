package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

const (
	// APIKeyHeader carries the API key of a client.
	APIKeyHeader = "X-API-Key"
	// TokenIssuer is the issuer operator tokens are minted and accepted with.
	TokenIssuer = "wcagrep"
	// tokenLeeway absorbs clock skew between the minting host and this one.
	tokenLeeway = 30 * time.Second
)

type ctxKey string

const (
	// OperatorIDKey stores the operator behind a bearer token.
	OperatorIDKey ctxKey = "OperatorID"
	// ClientKey stores the client authenticated by an API key.
	ClientKey ctxKey = "Client"
)

// GetOperatorIDFromContext returns the operator authenticated by a bearer token.
func GetOperatorIDFromContext(ctx context.Context) (domain.OperatorID, bool) {
	id, ok := ctx.Value(OperatorIDKey).(domain.OperatorID)

	return id, ok
}

// GetClientFromContext returns the client authenticated by an API key.
func GetClientFromContext(ctx context.Context) (*domain.Client, bool) {
	c, ok := ctx.Value(ClientKey).(*domain.Client)

	return c, ok
}

// ClientAuthenticator resolves API keys to clients.
type ClientAuthenticator interface {
	AuthenticateClient(ctx context.Context, key string) (*domain.Client, error)
}

type SecHandlerOptions struct {
	// Required turns authentication on for the protected routes.
	Required bool
	// PublicKey is the PEM encoded RSA key verifying bearer tokens. Bearer
	// tokens are rejected when it is empty.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		Required:  cfg.JWT.Required,
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates operators with RS256 bearer tokens and clients
// with API keys.
type SecHandler struct {
	required  bool
	publicKey *rsa.PublicKey
	clients   ClientAuthenticator
}

func NewSecHandler(opts *SecHandlerOptions, clients ClientAuthenticator) (*SecHandler, error) {
	s := &SecHandler{required: opts.Required, clients: clients}
	if opts.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		s.publicKey = key
	}

	return s, nil
}

// HandleBearerAuth validates an RS256 token whose subject is the operator ID
// and stores the operator in the returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "Bearer tokens are not accepted")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithLeeway(tokenLeeway),
	)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid token subject")
	}

	ctx = context.WithValue(ctx, OperatorIDKey, domain.OperatorID(id))
	ctx = logger.WithFields(ctx, zap.String(string(OperatorIDKey), id.String()))

	return ctx, nil
}

// HandleAPIKey resolves key to a client and stores it in the returned context.
func (s *SecHandler) HandleAPIKey(ctx context.Context, key string) (context.Context, error) {
	if s.clients == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "API keys are not accepted")
	}

	client, err := s.clients.AuthenticateClient(ctx, key)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, ClientKey, client)
	ctx = logger.WithFields(ctx, zap.Stringer("clientID", client.ID))

	return ctx, nil
}

// Middleware rejects unauthenticated requests when authentication is
// required. A bearer token takes precedence over an API key.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.required {
			next.ServeHTTP(w, r)

			return
		}

		ctx := r.Context()
		var err error
		switch {
		case strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "):
			ctx, err = s.HandleBearerAuth(ctx, strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		case r.Header.Get(APIKeyHeader) != "":
			ctx, err = s.HandleAPIKey(ctx, r.Header.Get(APIKeyHeader))
		default:
			err = serrors.With(serrors.ErrUnauthorized, "Authentication required")
		}
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MintToken signs an operator token accepted by HandleBearerAuth.
func MintToken(privateKeyPEM string, operator domain.OperatorID, ttl time.Duration, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    TokenIssuer,
		Subject:   uuid.UUID(operator).String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}
