package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/utils"
	"github.com/trackflow/trackflow-server/models"
)

// tokenService is the HS256 implementation of TokenService.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for iat/exp and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) *tokenService {
	return &tokenService{
		tokenSignKey:  cfg.JWTSecret,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}
}

// Issue signs a token for claims that expires after the configured duration.
func (s *tokenService) Issue(ctx context.Context, claims models.Claims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, s.tokenIssuer, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", claims.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates a raw JWT string and returns its claims.
//
// Expired tokens yield ErrTokenIsExpired. Tokens that are malformed, signed
// with another key or algorithm, issued by someone else, not yet valid or
// missing required claims yield ErrTokenIsInvalid. Anything else is returned
// wrapped as is.
func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer, s.now)
	if err == nil {
		return claims, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	default:
		return models.Claims{}, fmt.Errorf("unexpected token verification failure: %w", err)
	}
}
