package auth

import (
	"errors"
	"log/slog"
	"time"

	apperrors "github.com/smartexpense/expense-tracker/internal"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service pairs devices against the configured PIN and validates tokens.
type Service struct {
	pinHash        string
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

func NewService(pinHash string, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		pinHash:        pinHash,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Pair validates the PIN and issues a token pair for a new device id.
func (s *Service) Pair(dto PairDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(dto.PIN)); err != nil {
		s.logger.Warn("pairing rejected: wrong PIN", "device_name", dto.DeviceName)
		return AuthTokens{}, apperrors.ErrInvalidPIN
	}

	device := Device{
		ID:       uuid.NewString(),
		Name:     dto.DeviceName,
		PairedAt: time.Now().Unix(),
	}

	tokens, err := s.issueTokens(device)
	if err != nil {
		return AuthTokens{}, err
	}

	s.logger.Info("device paired", "device_id", device.ID, "device_name", device.Name)
	return tokens, nil
}

// Refresh rotates a token pair from a valid refresh token.
func (s *Service) Refresh(dto RefreshDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	claims, err := s.tokenGenerator.ValidateToken(dto.RefreshToken, TokenTypeRefresh)
	if err != nil {
		s.logger.Warn("refresh token rejected", "error", err)
		return AuthTokens{}, err
	}

	device := Device{ID: claims.DeviceID, Name: claims.DeviceName}

	tokens, err := s.issueTokens(device)
	if err != nil {
		return AuthTokens{}, err
	}

	s.logger.Info("tokens refreshed", "device_id", device.ID)
	return tokens, nil
}

// ValidateAccessToken checks a bearer token and returns the device it names.
func (s *Service) ValidateAccessToken(tokenString string) (*Device, error) {
	claims, err := s.tokenGenerator.ValidateToken(tokenString, TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &Device{ID: claims.DeviceID, Name: claims.DeviceName}, nil
}

func (s *Service) issueTokens(device Device) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(device)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err)
		return AuthTokens{}, apperrors.NewInternalError("failed to generate token", err)
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(device)
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err)
		return AuthTokens{}, apperrors.NewInternalError("failed to generate token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenGenerator.AccessTTL().Seconds()),
	}, nil
}

// JWTTokenGenerator signs device claims with HS256.
type JWTTokenGenerator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTTokenGenerator(secret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (g *JWTTokenGenerator) AccessTTL() time.Duration {
	return g.accessTTL
}

func (g *JWTTokenGenerator) GenerateAccessToken(device Device) (string, error) {
	return g.generate(device, TokenTypeAccess, g.accessTTL)
}

func (g *JWTTokenGenerator) GenerateRefreshToken(device Device) (string, error) {
	return g.generate(device, TokenTypeRefresh, g.refreshTTL)
}

func (g *JWTTokenGenerator) generate(device Device, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		DeviceID:   device.ID,
		DeviceName: device.Name,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

func (g *JWTTokenGenerator) ValidateToken(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
