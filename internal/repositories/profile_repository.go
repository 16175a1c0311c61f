package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/storage"
	"go.uber.org/zap"
)

// profileRepository implements the session store on top of a key-value store
type profileRepository struct {
	store  storage.Store
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(store storage.Store, logger *zap.Logger) *profileRepository {
	return &profileRepository{
		store:  store,
		logger: logger,
	}
}

// Load reads the profile stored for the device.
//
// A missing key returns models.ErrProfileNotFound.
// A value that cannot be decoded, or that decodes into an incomplete or out-of-range profile,
// is treated the same way, so the device falls back to the login screen.
func (r *profileRepository) Load(ctx context.Context, deviceID string) (*models.UserProfile, error) {
	raw, err := r.store.Get(ctx, deviceID, models.ProfileKey)
	if errors.Is(err, models.ErrKeyNotFound) {
		return nil, models.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		r.logger.Warn("stored profile is malformed, treating as absent", zap.String("deviceId", deviceID), zap.Error(err))
		return nil, models.ErrProfileNotFound
	}
	if reason := invalidProfileReason(&profile); reason != "" {
		r.logger.Warn("stored profile does not match the schema, treating as absent", zap.String("deviceId", deviceID), zap.String("reason", reason))
		return nil, models.ErrProfileNotFound
	}
	if profile.CompletedLessons == nil {
		profile.CompletedLessons = []string{}
	}

	return &profile, nil
}

// invalidProfileReason returns why a decoded profile cannot be used, or "" when it can
func invalidProfileReason(profile *models.UserProfile) string {
	switch {
	case profile.ID == "" || profile.Name == "" || profile.Email == "":
		return "missing identity fields"
	case !slices.Contains(models.Languages, profile.Language):
		return "unknown language"
	case !slices.Contains(models.Levels, profile.Level):
		return "unknown level"
	case profile.XP < 0 || profile.Streak < 0:
		return "negative progress"
	}
	return ""
}

// Save serializes the profile and writes it, overwriting any prior value
func (r *profileRepository) Save(ctx context.Context, deviceID string, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := r.store.Set(ctx, deviceID, models.ProfileKey, string(data)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Clear removes the stored profile
func (r *profileRepository) Clear(ctx context.Context, deviceID string) error {
	if err := r.store.Delete(ctx, deviceID, models.ProfileKey); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
