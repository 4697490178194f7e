package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Device identifies a paired installation of the mobile app. There is no
// user model: this is a single-owner personal tracker, and pairing only
// proves the caller knows the setup PIN.
type Device struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PairedAt int64  `json:"paired_at"`
}

type Claims struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// PairDTO is the pairing request: the device self-reports a name and proves
// possession of the PIN.
type PairDTO struct {
	DeviceName string `json:"device_name"`
	PIN        string `json:"pin"`
}

func (dto PairDTO) Validate() error {
	if dto.DeviceName == "" {
		return errors.New("device name is required")
	}
	if dto.PIN == "" {
		return errors.New("pin is required")
	}
	return nil
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshDTO) Validate() error {
	if dto.RefreshToken == "" {
		return errors.New("refresh token is required")
	}
	return nil
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenGenerator abstracts token issue/validation for the service.
type TokenGenerator interface {
	GenerateAccessToken(device Device) (string, error)
	GenerateRefreshToken(device Device) (string, error)
	ValidateToken(tokenString, tokenType string) (*Claims, error)
	AccessTTL() time.Duration
}

type deviceCtxKey struct{}

// ContextWithDevice stores the authenticated device on the request context.
func ContextWithDevice(ctx context.Context, device *Device) context.Context {
	return context.WithValue(ctx, deviceCtxKey{}, device)
}

// DeviceFromContext retrieves the authenticated device, if any.
func DeviceFromContext(ctx context.Context) (*Device, bool) {
	device, ok := ctx.Value(deviceCtxKey{}).(*Device)
	return device, ok
}
