package models

// DashboardStats holds the headline numbers on the dashboard
type DashboardStats struct {
	LessonsCompleted int    `json:"lessonsCompleted"`
	XP               int    `json:"xp"`
	Streak           int    `json:"streak"`
	StudyTime        string `json:"studyTime"`
	Rank             string `json:"rank"`
}

// Subject represents a subject card with the learner's progress
type Subject struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Progress int    `json:"progress"`
	Lessons  int    `json:"lessons"`
}

// Achievement represents a recently earned achievement
type Achievement struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Date  string `json:"date"`
}

// QuickAction represents a dashboard shortcut and the view it opens
type QuickAction struct {
	Label  string    `json:"label"`
	Target ViewState `json:"target"`
}

// DashboardSummary is everything the dashboard screen displays
type DashboardSummary struct {
	User         *UserProfile   `json:"user"`
	Stats        DashboardStats `json:"stats"`
	Subjects     []Subject      `json:"subjects"`
	Achievements []Achievement  `json:"achievements"`
	QuickActions []QuickAction  `json:"quickActions"`
}
