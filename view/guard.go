// Package view carries the admin dashboard's screen logic: list
// loading, zone selection, delete confirmation, and form submission.
// Controllers own their state behind a mutex and expose snapshots, so
// any front end (the expoctl CLI here) can render them.
package view

// SessionState is the part of the session store the guard reads.
type SessionState interface {
	LoggedIn() bool
}

// Guard gates protected screens on session presence. It is a pure
// predicate: no side effects, no navigation.
type Guard struct {
	sessions SessionState
}

// NewGuard returns a guard over the given session state.
func NewGuard(sessions SessionState) Guard {
	return Guard{sessions: sessions}
}

// Allow reports whether protected content may render.
func (g Guard) Allow() bool {
	return g.sessions.LoggedIn()
}

// Render runs protected when a session is present, otherwise fallback.
// Either callback may be nil.
func (g Guard) Render(protected, fallback func()) {
	if g.Allow() {
		if protected != nil {
			protected()
		}
		return
	}
	if fallback != nil {
		fallback()
	}
}
