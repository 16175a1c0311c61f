// Package view implements the per-device screen state machine.
package view

import (
	"fmt"

	"github.com/padhoai/backend/internal/models"
)

// Event is a user action that may move the router to another view
type Event string

const (
	EventLoginSucceeded  Event = "login_succeeded"
	EventSignupSucceeded Event = "signup_succeeded"
	EventSwitchForm      Event = "switch_form"
	EventNavigate        Event = "navigate"
	EventBack            Event = "back"
	EventLogout          Event = "logout"
)

// dashboardTargets are the screens reachable from the dashboard
var dashboardTargets = map[models.ViewState]bool{
	models.ViewChat:     true,
	models.ViewLessons:  true,
	models.ViewQuiz:     true,
	models.ViewProgress: true,
	models.ViewSettings: true,
}

// Router holds the active view of one device. It is not safe for concurrent use;
// Registry serializes access.
type Router struct {
	state models.ViewState
}

// NewRouter creates a router in its initial state:
// dashboard when a stored profile exists, login otherwise.
func NewRouter(hasProfile bool) *Router {
	if hasProfile {
		return &Router{state: models.ViewDashboard}
	}
	return &Router{state: models.ViewLogin}
}

// State returns the active view
func (r *Router) State() models.ViewState {
	return r.state
}

// Next computes the view an event leads to without changing the router.
// target is only read by EventNavigate and EventSwitchForm.
func Next(from models.ViewState, event Event, target models.ViewState) (models.ViewState, error) {
	switch event {
	case EventLogout:
		return models.ViewLogin, nil
	case EventLoginSucceeded:
		if from == models.ViewLogin {
			return models.ViewDashboard, nil
		}
	case EventSignupSucceeded:
		if from == models.ViewSignup {
			return models.ViewDashboard, nil
		}
	case EventSwitchForm:
		if from == models.ViewLogin && target == models.ViewSignup {
			return models.ViewSignup, nil
		}
		if from == models.ViewSignup && target == models.ViewLogin {
			return models.ViewLogin, nil
		}
	case EventNavigate:
		if from == models.ViewDashboard && dashboardTargets[target] {
			return target, nil
		}
	case EventBack:
		if from == models.ViewChat || from.IsPlaceholder() {
			return models.ViewDashboard, nil
		}
	}
	return from, fmt.Errorf("%w: %s on %s", models.ErrInvalidTransition, event, from)
}

// Fire applies an event. On error the state is left unchanged.
// It returns the view that was left.
func (r *Router) Fire(event Event, target models.ViewState) (models.ViewState, error) {
	next, err := Next(r.state, event, target)
	if err != nil {
		return r.state, err
	}
	prev := r.state
	r.state = next
	return prev, nil
}
