package services

import (
	"context"
	"errors"
	"time"

	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/view"
	"go.uber.org/zap"
)

// ProfileRepository is the interface that wraps methods for the stored learner profile
type ProfileRepository interface {
	// Method Load reads the profile stored for a device.
	//
	// If no profile is stored, or the stored value cannot be decoded, models.ErrProfileNotFound is returned together with "nil" value.
	// Any other error means the storage backend failed.
	Load(ctx context.Context, deviceID string) (*models.UserProfile, error)
	// Method Save serializes the profile and writes it, overwriting any prior value.
	//
	// If some error occurs during write, the error will be returned.
	Save(ctx context.Context, deviceID string, profile *models.UserProfile) error
	// Method Clear removes the stored profile of a device.
	//
	// Clearing a device without a profile is not an error.
	Clear(ctx context.Context, deviceID string) error
}

// ViewRegistry is the interface that wraps methods of the per-device view state machine
type ViewRegistry interface {
	// Method Boot re-initializes the device's view: dashboard when "hasProfile" is true, login otherwise.
	Boot(deviceID string, hasProfile bool) models.ViewState
	// Method Current returns the device's view.
	//
	// "hasProfile" is only called when the device is unknown and has to be booted.
	Current(deviceID string, hasProfile func() bool) models.ViewState
	// Method Fire applies an event to the device's view.
	//
	// If the event is not allowed from the current view, an error wrapping models.ErrInvalidTransition
	// is returned together with the unchanged view.
	Fire(deviceID string, hasProfile func() bool, event view.Event, target models.ViewState) (models.ViewState, error)
}

// profileProbe returns a callback reporting whether the device has a usable stored profile.
// Storage errors are logged and reported as "no profile". The store is read at most once per callback.
func profileProbe(ctx context.Context, repo ProfileRepository, logger *zap.Logger, deviceID string) func() bool {
	var probed, found bool
	return func() bool {
		if probed {
			return found
		}
		_, err := repo.Load(ctx, deviceID)
		if err != nil && !errors.Is(err, models.ErrProfileNotFound) {
			logger.Error("failed to load profile", zap.String("deviceId", deviceID), zap.Error(err))
		}
		probed, found = true, err == nil
		return found
	}
}

// simulateLatency blocks for d or until the context is done
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
