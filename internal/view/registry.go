package view

import (
	"sync"
	"time"

	"github.com/padhoai/backend/internal/models"
)

// LeaveHook is called after a device leaves a view.
// Hooks run while the registry is locked and must not call back into it.
type LeaveHook func(deviceID string)

type entry struct {
	router   *Router
	lastSeen time.Time
}

// Registry keeps one Router per device in memory.
// View state is transient: it is lost on restart and rebuilt by Boot.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	hooks   map[models.ViewState][]LeaveHook
	now     func() time.Time
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		hooks:   make(map[models.ViewState][]LeaveHook),
		now:     time.Now,
	}
}

// OnLeave registers a hook that runs whenever a device leaves the given view
func (reg *Registry) OnLeave(state models.ViewState, hook LeaveHook) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.hooks[state] = append(reg.hooks[state], hook)
}

// Boot (re)initializes the device's router, as a page reload does
func (reg *Registry) Boot(deviceID string, hasProfile bool) models.ViewState {
	reg.mu.Lock()
	var hooks []LeaveHook
	if e, ok := reg.entries[deviceID]; ok {
		hooks = reg.hooks[e.router.State()]
	}
	router := NewRouter(hasProfile)
	reg.entries[deviceID] = &entry{router: router, lastSeen: reg.now()}
	runHooks(hooks, deviceID)
	reg.mu.Unlock()

	return router.State()
}

// Current returns the device's view, booting it with hasProfile when unknown
func (reg *Registry) Current(deviceID string, hasProfile func() bool) models.ViewState {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	e := reg.lookup(deviceID, hasProfile)
	return e.router.State()
}

// Fire applies an event to the device's router.
// Devices without a router are treated as freshly booted with hasProfile.
func (reg *Registry) Fire(deviceID string, hasProfile func() bool, event Event, target models.ViewState) (models.ViewState, error) {
	reg.mu.Lock()
	e := reg.lookup(deviceID, hasProfile)
	prev, err := e.router.Fire(event, target)
	state := e.router.State()
	var hooks []LeaveHook
	if err == nil && prev != state {
		hooks = reg.hooks[prev]
	}
	runHooks(hooks, deviceID)
	reg.mu.Unlock()

	return state, err
}

// lookup returns the device entry, creating it when missing. Callers hold reg.mu.
func (reg *Registry) lookup(deviceID string, hasProfile func() bool) *entry {
	e, ok := reg.entries[deviceID]
	if !ok {
		e = &entry{router: NewRouter(hasProfile())}
		reg.entries[deviceID] = e
	}
	e.lastSeen = reg.now()
	return e
}

// Forget drops the device's router
func (reg *Registry) Forget(deviceID string) {
	reg.mu.Lock()
	e, ok := reg.entries[deviceID]
	var hooks []LeaveHook
	if ok {
		hooks = reg.hooks[e.router.State()]
		delete(reg.entries, deviceID)
	}
	runHooks(hooks, deviceID)
	reg.mu.Unlock()
}

// runHooks calls the leave hooks before the registry is unlocked, so no request can
// observe the new view while the old view's state still exists
func runHooks(hooks []LeaveHook, deviceID string) {
	for _, hook := range hooks {
		hook(deviceID)
	}
}

// EvictIdle forgets every device not seen for longer than maxIdle and returns how many were dropped
func (reg *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := reg.now().Add(-maxIdle)

	reg.mu.Lock()
	var idle []string
	for id, e := range reg.entries {
		if e.lastSeen.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	reg.mu.Unlock()

	for _, id := range idle {
		reg.Forget(id)
	}
	return len(idle)
}

// Len returns the number of tracked devices
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.entries)
}
