package models

// ViewState is the single active screen identifier
type ViewState string

const (
	ViewLogin     ViewState = "login"
	ViewSignup    ViewState = "signup"
	ViewDashboard ViewState = "dashboard"
	ViewChat      ViewState = "chat"
	ViewLessons   ViewState = "lessons"
	ViewQuiz      ViewState = "quiz"
	ViewProgress  ViewState = "progress"
	ViewSettings  ViewState = "settings"
)

// IsPlaceholder reports whether the view is a "coming soon" screen
func (v ViewState) IsPlaceholder() bool {
	switch v {
	case ViewLessons, ViewQuiz, ViewProgress, ViewSettings:
		return true
	}
	return false
}

// Valid reports whether the value is one of the known views
func (v ViewState) Valid() bool {
	switch v {
	case ViewLogin, ViewSignup, ViewDashboard, ViewChat:
		return true
	}
	return v.IsPlaceholder()
}

// ViewRequest represents a navigation or form-switch request
type ViewRequest struct {
	Target ViewState `json:"target"`
}

// ViewResponse describes the device's current screen
type ViewResponse struct {
	View       ViewState `json:"view"`
	ComingSoon bool      `json:"comingSoon"`
	HasProfile bool      `json:"hasProfile"`
}
