package services

import (
	"context"

	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// Fixed figures shown on the dashboard until real progress tracking exists
const (
	studyTime = "2.5h"
	rank      = "#42"
)

var subjects = []models.Subject{
	{Name: "Mathematics", Icon: "🔢", Progress: 45, Lessons: 24},
	{Name: "Science", Icon: "🔬", Progress: 30, Lessons: 18},
	{Name: "English", Icon: "📚", Progress: 65, Lessons: 32},
	{Name: "Coding", Icon: "💻", Progress: 20, Lessons: 12},
	{Name: "AI/ML", Icon: "🤖", Progress: 10, Lessons: 8},
	{Name: "History", Icon: "🏛️", Progress: 55, Lessons: 28},
}

var achievements = []models.Achievement{
	{Title: "First Lesson!", Icon: "🎯", Date: "Today"},
	{Title: "Quick Learner", Icon: "⚡", Date: "Yesterday"},
	{Title: "Streak Master", Icon: "🔥", Date: "2 days ago"},
}

var quickActions = []models.QuickAction{
	{Label: "AI Tutor Chat", Target: models.ViewChat},
	{Label: "Browse Lessons", Target: models.ViewLessons},
	{Label: "Take Quiz", Target: models.ViewQuiz},
	{Label: "View Progress", Target: models.ViewProgress},
}

// dashboardService implements DashboardService
type dashboardService struct {
	profileRepo ProfileRepository
	logger      *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(profileRepo ProfileRepository, logger *zap.Logger) *dashboardService {
	return &dashboardService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Summary builds the dashboard of the device's learner
func (s *dashboardService) Summary(ctx context.Context, deviceID string) (*models.DashboardSummary, error) {
	profile, err := s.profileRepo.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		User: profile,
		Stats: models.DashboardStats{
			LessonsCompleted: len(profile.CompletedLessons),
			XP:               profile.XP,
			Streak:           profile.Streak,
			StudyTime:        studyTime,
			Rank:             rank,
		},
		Subjects:     append([]models.Subject(nil), subjects...),
		Achievements: append([]models.Achievement(nil), achievements...),
		QuickActions: append([]models.QuickAction(nil), quickActions...),
	}, nil
}
