// Package identity verifies login credentials issued by the external identity
// provider.
package identity

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	identityUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/identity/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type providerClaims struct {
	WalletAddress string `json:"wallet_address"`
	Email         string `json:"email"`
	jwt.RegisteredClaims
}

// ProviderVerifier checks provider-issued JWTs. A PEM verification key
// selects ES256; any other key is used as an HS256 secret.
type ProviderVerifier struct {
	key      interface{}
	methods  []string
	issuer   string
	audience string
	logger   logger.Interface
}

func NewProviderVerifier(cfg config.IdentityConfig, logger logger.Interface) (*ProviderVerifier, error) {
	if strings.TrimSpace(cfg.VerificationKey) == "" {
		return nil, fmt.Errorf("identity verification key is required")
	}

	v := &ProviderVerifier{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		logger:   logger,
	}

	if block, _ := pem.Decode([]byte(cfg.VerificationKey)); block != nil {
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse identity verification key: %w", err)
		}
		v.key = pub
		v.methods = []string{jwt.SigningMethodES256.Alg()}
	} else {
		v.key = []byte(cfg.VerificationKey)
		v.methods = []string{jwt.SigningMethodHS256.Alg()}
	}

	return v, nil
}

func (v *ProviderVerifier) Verify(ctx context.Context, credential string) (*identityUsecases.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &providerClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		v.logger.Debugw("identity credential rejected", "error", err)
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenExpiredError("identity credential")
		}
		return nil, errors.NewTokenInvalidError("identity credential")
	}

	if claims.Subject == "" || strings.TrimSpace(claims.WalletAddress) == "" {
		return nil, errors.NewUnauthorizedError("identity credential carries no wallet")
	}

	return &identityUsecases.Identity{
		Subject:       claims.Subject,
		WalletAddress: claims.WalletAddress,
		Email:         claims.Email,
	}, nil
}
