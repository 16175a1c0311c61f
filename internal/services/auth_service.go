package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/view"
	"go.uber.org/zap"
)

// Placeholder values of a profile created by login
const (
	loginProfileID   = "1"
	loginProfileName = "Student User"
)

// authService implements AuthService
type authService struct {
	profileRepo ProfileRepository
	views       ViewRegistry
	delay       time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService creates a new auth service.
//
// "delay" is the artificial latency applied to every login and signup submission.
func NewAuthService(profileRepo ProfileRepository, views ViewRegistry, delay time.Duration, logger *zap.Logger) *authService {
	return &authService{
		profileRepo: profileRepo,
		views:       views,
		delay:       delay,
		logger:      logger,
		now:         time.Now,
	}
}

// Login creates a placeholder profile for the submitted email and opens the dashboard.
//
// Both fields must be non-empty; the password is not checked against anything.
func (s *authService) Login(ctx context.Context, deviceID string, req *models.LoginRequest) (*models.UserProfile, error) {
	if err := s.checkTransition(ctx, deviceID, view.EventLoginSucceeded); err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	if req.Email == "" || req.Password == "" {
		return nil, models.ErrRequiredFields
	}

	profile := &models.UserProfile{
		ID:               loginProfileID,
		Name:             loginProfileName,
		Email:            req.Email,
		Language:         models.LanguageEnglish,
		Level:            models.LevelIntermediate,
		XP:               0,
		Streak:           0,
		CompletedLessons: []string{},
	}

	if err := s.profileRepo.Save(ctx, deviceID, profile); err != nil {
		s.logger.Error("failed to save profile on login", zap.String("deviceId", deviceID), zap.Error(err))
		return nil, err
	}

	if _, err := s.views.Fire(deviceID, alwaysProfile, view.EventLoginSucceeded, ""); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("deviceId", deviceID))
	return profile, nil
}

// Signup creates a profile from the signup form and opens the dashboard.
//
// Every field must be non-empty. Language and level must be values offered by the form,
// and age must be a non-negative whole number.
func (s *authService) Signup(ctx context.Context, deviceID string, req *models.SignupRequest) (*models.UserProfile, error) {
	if err := s.checkTransition(ctx, deviceID, view.EventSignupSucceeded); err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Age == "" || req.Language == "" || req.Level == "" {
		return nil, models.ErrRequiredFields
	}

	language := models.Language(req.Language)
	if !slices.Contains(models.Languages, language) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidLanguage, req.Language)
	}
	level := models.Level(req.Level)
	if !slices.Contains(models.Levels, level) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidLevel, req.Level)
	}
	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil || age < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidAge, req.Age)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	profile := &models.UserProfile{
		ID:               strconv.FormatInt(now.UnixMilli(), 10),
		Name:             req.Name,
		Email:            req.Email,
		Language:         language,
		Level:            level,
		XP:               0,
		Streak:           0,
		CompletedLessons: []string{},
		Age:              &age,
		Badges:           []string{},
		CreatedAt:        &now,
	}

	if err := s.profileRepo.Save(ctx, deviceID, profile); err != nil {
		s.logger.Error("failed to save profile on signup", zap.String("deviceId", deviceID), zap.Error(err))
		return nil, err
	}

	if _, err := s.views.Fire(deviceID, alwaysProfile, view.EventSignupSucceeded, ""); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("deviceId", deviceID), zap.String("language", string(language)), zap.String("level", string(level)))
	return profile, nil
}

// Logout clears the stored profile and returns the device to the login view
func (s *authService) Logout(ctx context.Context, deviceID string) error {
	if err := s.profileRepo.Clear(ctx, deviceID); err != nil {
		s.logger.Error("failed to clear profile on logout", zap.String("deviceId", deviceID), zap.Error(err))
		return err
	}

	if _, err := s.views.Fire(deviceID, noProfile, view.EventLogout, ""); err != nil {
		return err
	}

	s.logger.Info("user logged out", zap.String("deviceId", deviceID))
	return nil
}

// Profile returns the stored profile of the device
func (s *authService) Profile(ctx context.Context, deviceID string) (*models.UserProfile, error) {
	return s.profileRepo.Load(ctx, deviceID)
}

// checkTransition rejects a submission whose success could not be applied to the current view
func (s *authService) checkTransition(ctx context.Context, deviceID string, event view.Event) error {
	current := s.views.Current(deviceID, profileProbe(ctx, s.profileRepo, s.logger, deviceID))
	_, err := view.Next(current, event, "")
	return err
}

func alwaysProfile() bool { return true }

func noProfile() bool { return false }
