// Package auth issues and validates the signed tokens that identify a device.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const deviceTokenType = "device"

// DeviceTokens handles device token generation and validation
type DeviceTokens struct {
	secret string
	expiry time.Duration
	now    func() time.Time
}

// NewDeviceTokens creates a new device token generator
func NewDeviceTokens(secret string, expiry time.Duration) *DeviceTokens {
	return &DeviceTokens{
		secret: secret,
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue creates a new device identifier and a token carrying it
func (dt *DeviceTokens) Issue() (string, string, error) {
	deviceID := uuid.NewString()
	token, err := dt.Sign(deviceID)
	if err != nil {
		return "", "", err
	}
	return deviceID, token, nil
}

// Sign creates a token for an existing device identifier
func (dt *DeviceTokens) Sign(deviceID string) (string, error) {
	now := dt.now()
	claims := jwt.MapClaims{
		"device_id": deviceID,
		"exp":       now.Add(dt.expiry).Unix(),
		"iat":       now.Unix(),
		"type":      deviceTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(dt.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign device token: %w", err)
	}

	return tokenString, nil
}

// Validate validates a device token and returns the device identifier
func (dt *DeviceTokens) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(dt.secret), nil
	}, jwt.WithTimeFunc(dt.now))

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != deviceTokenType {
		return "", fmt.Errorf("token is not a device token")
	}

	deviceID, ok := claims["device_id"].(string)
	if !ok || deviceID == "" {
		return "", fmt.Errorf("device_id not found in token")
	}

	return deviceID, nil
}

// Expiry returns the lifetime of issued tokens
func (dt *DeviceTokens) Expiry() time.Duration {
	return dt.expiry
}
