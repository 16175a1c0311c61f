package services

import (
	"context"
	"fmt"

	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/view"
	"go.uber.org/zap"
)

// viewService implements ViewService
type viewService struct {
	profileRepo ProfileRepository
	views       ViewRegistry
	logger      *zap.Logger
}

// NewViewService creates a new view service
func NewViewService(profileRepo ProfileRepository, views ViewRegistry, logger *zap.Logger) *viewService {
	return &viewService{
		profileRepo: profileRepo,
		views:       views,
		logger:      logger,
	}
}

// Boot re-initializes the device's view from the stored profile, as a page reload does
func (s *viewService) Boot(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	hasProfile := profileProbe(ctx, s.profileRepo, s.logger, deviceID)()
	state := s.views.Boot(deviceID, hasProfile)
	return newViewResponse(state, hasProfile), nil
}

// Current returns the device's view
func (s *viewService) Current(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	probe := profileProbe(ctx, s.profileRepo, s.logger, deviceID)
	state := s.views.Current(deviceID, probe)
	return newViewResponse(state, probe()), nil
}

// Navigate moves from the dashboard to one of its sections
func (s *viewService) Navigate(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error) {
	return s.fire(ctx, deviceID, view.EventNavigate, target)
}

// Back returns from the chat or a placeholder section to the dashboard
func (s *viewService) Back(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	return s.fire(ctx, deviceID, view.EventBack, "")
}

// SwitchForm toggles between the login and signup forms
func (s *viewService) SwitchForm(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error) {
	return s.fire(ctx, deviceID, view.EventSwitchForm, target)
}

func (s *viewService) fire(ctx context.Context, deviceID string, event view.Event, target models.ViewState) (*models.ViewResponse, error) {
	if target != "" && !target.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidView, target)
	}

	probe := profileProbe(ctx, s.profileRepo, s.logger, deviceID)
	state, err := s.views.Fire(deviceID, probe, event, target)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("view changed", zap.String("deviceId", deviceID), zap.String("event", string(event)), zap.String("view", string(state)))
	return newViewResponse(state, probe()), nil
}

func newViewResponse(state models.ViewState, hasProfile bool) *models.ViewResponse {
	return &models.ViewResponse{
		View:       state,
		ComingSoon: state.IsPlaceholder(),
		HasProfile: hasProfile,
	}
}
