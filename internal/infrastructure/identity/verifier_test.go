package identity

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

func credential(t *testing.T, method jwt.SigningMethod, key interface{}, claims providerClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims() providerClaims {
	return providerClaims{
		WalletAddress: "Wallet1",
		Email:         "fan@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "did:provider:1",
			Issuer:    "https://auth.example.com",
			Audience:  jwt.ClaimStrings{"sportsx"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestProviderVerifier_HS256(t *testing.T) {
	v, err := NewProviderVerifier(config.IdentityConfig{
		Issuer:          "https://auth.example.com",
		Audience:        "sportsx",
		VerificationKey: "provider-secret",
	}, logger.NewNopLogger())
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), credential(t, jwt.SigningMethodHS256, []byte("provider-secret"), validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "did:provider:1", id.Subject)
	assert.Equal(t, "Wallet1", id.WalletAddress)
	assert.Equal(t, "fan@example.com", id.Email)
}

func TestProviderVerifier_ES256(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	v, err := NewProviderVerifier(config.IdentityConfig{VerificationKey: pemKey}, logger.NewNopLogger())
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), credential(t, jwt.SigningMethodES256, priv, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "Wallet1", id.WalletAddress)

	// An HS256 token must not pass against an ES256 key.
	_, err = v.Verify(context.Background(), credential(t, jwt.SigningMethodHS256, []byte("x"), validClaims()))
	assert.True(t, errors.IsAppError(err))
}

func TestProviderVerifier_Rejections(t *testing.T) {
	v, err := NewProviderVerifier(config.IdentityConfig{
		Issuer:          "https://auth.example.com",
		Audience:        "sportsx",
		VerificationKey: "provider-secret",
	}, logger.NewNopLogger())
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://evil.example.com"
	noWallet := validClaims()
	noWallet.WalletAddress = ""

	tests := []struct {
		name     string
		cred     string
		wantType errors.ErrorType
	}{
		{"expired", credential(t, jwt.SigningMethodHS256, []byte("provider-secret"), expired), errors.ErrorTypeTokenExpired},
		{"wrong issuer", credential(t, jwt.SigningMethodHS256, []byte("provider-secret"), wrongIssuer), errors.ErrorTypeTokenInvalid},
		{"no wallet", credential(t, jwt.SigningMethodHS256, []byte("provider-secret"), noWallet), errors.ErrorTypeUnauthorized},
		{"wrong key", credential(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), errors.ErrorTypeTokenInvalid},
		{"garbage", "nope", errors.ErrorTypeTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tt.cred)
			require.Error(t, err)
			assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
			assert.Equal(t, http.StatusUnauthorized, errors.GetAppError(err).Code)
		})
	}
}

func TestNewProviderVerifier_RequiresKey(t *testing.T) {
	_, err := NewProviderVerifier(config.IdentityConfig{}, logger.NewNopLogger())
	assert.Error(t, err)
}
