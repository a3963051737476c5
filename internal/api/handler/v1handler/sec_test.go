package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wcagrep/internal/api/handler/v1handler"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
)

type keyPair struct {
	key        *rsa.PrivateKey
	privatePEM string
	publicPEM  string
}

func newKeyPair(t *testing.T) keyPair {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return keyPair{
		key:        key,
		privatePEM: string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})),
		publicPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
	}
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

type clientsFunc func(ctx context.Context, key string) (*domain.Client, error)

func (f clientsFunc) AuthenticateClient(ctx context.Context, key string) (*domain.Client, error) {
	return f(ctx, key)
}

func TestMintToken_RoundTrip(t *testing.T) {
	kp := newKeyPair(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{Required: true, PublicKey: kp.publicPEM}, nil)
	require.NoError(t, err)

	operator := domain.OperatorID(uuid.New())
	token, err := v1handler.MintToken(kp.privatePEM, operator, time.Hour, time.Now())
	require.NoError(t, err)

	ctx, err := sh.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	got, ok := v1handler.GetOperatorIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, operator, got)

	_, err = v1handler.MintToken("not a key", operator, time.Hour, time.Now())
	require.Error(t, err)
}

func TestHandleBearerAuth_Rejections(t *testing.T) {
	kp := newKeyPair(t)
	other := newKeyPair(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{Required: true, PublicKey: kp.publicPEM}, nil)
	require.NoError(t, err)

	now := time.Now()
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    v1handler.TokenIssuer,
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
	}
	with := func(mut func(*jwt.RegisteredClaims)) jwt.RegisteredClaims {
		c := valid()
		mut(&c)

		return c
	}

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{
			name:    "signed by another key",
			token:   sign(t, jwt.SigningMethodRS256, other.key, valid()),
			message: "Invalid token",
		},
		{
			name:    "symmetric algorithm",
			token:   sign(t, jwt.SigningMethodHS256, []byte("secret"), valid()),
			message: "Invalid token",
		},
		{
			name:    "expired beyond leeway",
			token:   sign(t, jwt.SigningMethodRS256, kp.key, with(func(c *jwt.RegisteredClaims) { c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour)) })),
			message: "Invalid token",
		},
		{
			name:    "no expiry",
			token:   sign(t, jwt.SigningMethodRS256, kp.key, with(func(c *jwt.RegisteredClaims) { c.ExpiresAt = nil })),
			message: "Invalid token",
		},
		{
			name:    "foreign issuer",
			token:   sign(t, jwt.SigningMethodRS256, kp.key, with(func(c *jwt.RegisteredClaims) { c.Issuer = "someone-else" })),
			message: "Invalid token",
		},
		{
			name:    "subject is not an operator id",
			token:   sign(t, jwt.SigningMethodRS256, kp.key, with(func(c *jwt.RegisteredClaims) { c.Subject = "admin" })),
			message: "Invalid token subject",
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			message: "Invalid token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), tt.token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
			require.Equal(t, tt.message, serrors.MessageOf(err))
		})
	}
}

func TestHandleBearerAuth_WithinLeeway(t *testing.T) {
	kp := newKeyPair(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: kp.publicPEM}, nil)
	require.NoError(t, err)

	token, err := v1handler.MintToken(kp.privatePEM, domain.OperatorID(uuid.New()), time.Minute, time.Now().Add(-70*time.Second))
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
}

func TestHandleBearerAuth_NoPublicKey(t *testing.T) {
	kp := newKeyPair(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{}, nil)
	require.NoError(t, err)

	token, err := v1handler.MintToken(kp.privatePEM, domain.OperatorID(uuid.New()), time.Hour, time.Now())
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Equal(t, "Bearer tokens are not accepted", serrors.MessageOf(err))
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "-----BEGIN PUBLIC KEY-----\nnope\n-----END PUBLIC KEY-----"}, nil)
	require.Error(t, err)
}

func TestHandleAPIKey(t *testing.T) {
	client := &domain.Client{ID: domain.ClientID(uuid.New()), Name: "Acme"}
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{}, clientsFunc(func(_ context.Context, key string) (*domain.Client, error) {
		if key != "good" {
			return nil, serrors.With(serrors.ErrUnauthorized, "Invalid API key")
		}

		return client, nil
	}))
	require.NoError(t, err)

	ctx, err := sh.HandleAPIKey(context.Background(), "good")
	require.NoError(t, err)
	got, ok := v1handler.GetClientFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, client, got)

	_, err = sh.HandleAPIKey(context.Background(), "bad")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	noClients, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{}, nil)
	require.NoError(t, err)
	_, err = noClients.HandleAPIKey(context.Background(), "good")
	require.Equal(t, "API keys are not accepted", serrors.MessageOf(err))
}

func TestSecHandler_Middleware(t *testing.T) {
	kp := newKeyPair(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{Required: true, PublicKey: kp.publicPEM},
		clientsFunc(func(_ context.Context, key string) (*domain.Client, error) {
			if key != "agency-key" {
				return nil, serrors.With(serrors.ErrUnauthorized, "Invalid API key")
			}

			return &domain.Client{ID: domain.ClientID(uuid.New())}, nil
		}))
	require.NoError(t, err)

	token, err := v1handler.MintToken(kp.privatePEM, domain.OperatorID(uuid.New()), time.Hour, time.Now())
	require.NoError(t, err)

	var sawOperator, sawClient bool
	h := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawOperator = v1handler.GetOperatorIDFromContext(r.Context())
		_, sawClient = v1handler.GetClientFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name     string
		header   map[string]string
		status   int
		operator bool
		client   bool
	}{
		{name: "anonymous", header: nil, status: http.StatusUnauthorized},
		{name: "operator", header: map[string]string{"Authorization": "Bearer " + token}, status: http.StatusNoContent, operator: true},
		{name: "bad bearer", header: map[string]string{"Authorization": "Bearer nope"}, status: http.StatusUnauthorized},
		{name: "client", header: map[string]string{v1handler.APIKeyHeader: "agency-key"}, status: http.StatusNoContent, client: true},
		{name: "bad api key", header: map[string]string{v1handler.APIKeyHeader: "stolen"}, status: http.StatusUnauthorized},
		{
			name:     "bearer wins over api key",
			header:   map[string]string{"Authorization": "Bearer " + token, v1handler.APIKeyHeader: "agency-key"},
			status:   http.StatusNoContent,
			operator: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sawOperator, sawClient = false, false
			req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, tt.operator, sawOperator)
			require.Equal(t, tt.client, sawClient)
		})
	}
}

func TestSecHandler_MiddlewareNotRequired(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{}, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/prospects", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
