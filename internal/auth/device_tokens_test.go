package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func TestNewDeviceTokens(t *testing.T) {
	dt := NewDeviceTokens(testSecret, 24*time.Hour)

	assert.NotNil(t, dt)
	assert.Equal(t, testSecret, dt.secret)
	assert.Equal(t, 24*time.Hour, dt.Expiry())
}

func TestDeviceTokens_IssueAndValidate(t *testing.T) {
	dt := NewDeviceTokens(testSecret, time.Hour)

	deviceID, token, err := dt.Issue()
	require.NoError(t, err)

	_, err = uuid.Parse(deviceID)
	assert.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	validated, err := dt.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, deviceID, validated)
}

func TestDeviceTokens_IssueUniqueDevices(t *testing.T) {
	dt := NewDeviceTokens(testSecret, time.Hour)

	first, _, err := dt.Issue()
	require.NoError(t, err)
	second, _, err := dt.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeviceTokens_Validate(t *testing.T) {
	dt := NewDeviceTokens(testSecret, time.Hour)

	signWith := func(secret string, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name          string
		token         string
		errorContains string
	}{
		{
			name:          "malformed token",
			token:         "not-a-token",
			errorContains: "failed to parse token",
		},
		{
			name:          "wrong secret",
			token:         signWith("another-secret", jwt.MapClaims{"device_id": "d1", "type": "device", "exp": future}),
			errorContains: "failed to parse token",
		},
		{
			name:          "expired",
			token:         signWith(testSecret, jwt.MapClaims{"device_id": "d1", "type": "device", "exp": time.Now().Add(-time.Hour).Unix()}),
			errorContains: "failed to parse token",
		},
		{
			name:          "access token instead of device token",
			token:         signWith(testSecret, jwt.MapClaims{"device_id": "d1", "type": "access", "exp": future}),
			errorContains: "token is not a device token",
		},
		{
			name:          "missing device id",
			token:         signWith(testSecret, jwt.MapClaims{"type": "device", "exp": future}),
			errorContains: "device_id not found in token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceID, err := dt.Validate(tt.token)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Empty(t, deviceID)
		})
	}
}

func TestDeviceTokens_SignKeepsDevice(t *testing.T) {
	dt := NewDeviceTokens(testSecret, time.Hour)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dt.now = func() time.Time { return fixed }

	token, err := dt.Sign("device-42")
	require.NoError(t, err)

	deviceID, err := dt.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "device-42", deviceID)

	dt.now = func() time.Time { return fixed.Add(2 * time.Hour) }
	_, err = dt.Validate(token)
	assert.Error(t, err)
}
