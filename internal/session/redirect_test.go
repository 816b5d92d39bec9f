package session

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/consistencyhq/consistency-cli/internal/models"
)

func TestEvaluateRedirect(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		current    Route
		wantRoute  Route
		wantAction bool
	}{
		{
			name:       "signed out on protected screen",
			state:      StateSignedOut,
			current:    RouteToday,
			wantRoute:  RouteOnboarding,
			wantAction: true,
		},
		{
			name:       "signed out on onboarding",
			state:      StateSignedOut,
			current:    RouteOnboarding,
			wantAction: false,
		},
		{
			name:       "signed out on login",
			state:      StateSignedOut,
			current:    RouteLogin,
			wantAction: false,
		},
		{
			name:       "signed in on auth screen",
			state:      StateSignedIn,
			current:    RouteSignIn,
			wantRoute:  RouteToday,
			wantAction: true,
		},
		{
			name:       "signed in on register",
			state:      StateSignedIn,
			current:    RouteRegister,
			wantRoute:  RouteToday,
			wantAction: true,
		},
		{
			name:       "signed in on main area",
			state:      StateSignedIn,
			current:    RouteToday,
			wantAction: false,
		},
		{
			name:       "unknown state never redirects",
			state:      StateUnknown,
			current:    RouteToday,
			wantAction: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, acted := EvaluateRedirect(tt.state, tt.current)
			if acted != tt.wantAction {
				t.Fatalf("EvaluateRedirect(%v, %q) action = %v, want %v", tt.state, tt.current, acted, tt.wantAction)
			}
			if acted && got != tt.wantRoute {
				t.Errorf("EvaluateRedirect(%v, %q) = %q, want %q", tt.state, tt.current, got, tt.wantRoute)
			}
		})
	}
}

func TestEvaluateRedirectIdempotent(t *testing.T) {
	// The route a redirect lands on must itself produce no action
	for _, state := range []State{StateSignedOut, StateSignedIn} {
		for _, current := range []Route{RouteOnboarding, RouteSignIn, RouteLogin, RouteRegister, RouteToday} {
			target, acted := EvaluateRedirect(state, current)
			if !acted {
				continue
			}
			if _, again := EvaluateRedirect(state, target); again {
				t.Errorf("EvaluateRedirect(%v, %q) -> %q is not a fixed point", state, current, target)
			}
		}
	}
}

func TestManagerRedirectIdempotent(t *testing.T) {
	gokeyring.MockInit()

	nav := &fakeNav{route: RouteToday}
	m := NewManager(NewStore(t.TempDir()), &fakeAPI{}, nav)
	m.Init()

	if len(nav.replaced) != 1 {
		t.Fatalf("Init produced %d navigations, want 1", len(nav.replaced))
	}

	// Re-evaluating with unchanged inputs must not navigate again
	m.RouteChanged()
	m.RouteChanged()
	if len(nav.replaced) != 1 {
		t.Errorf("repeated evaluation produced %d navigations, want 1", len(nav.replaced))
	}
}

func TestManagerRedirectsOnSignIn(t *testing.T) {
	gokeyring.MockInit()

	nav := &fakeNav{route: RouteLogin}
	m := NewManager(NewStore(t.TempDir()), &fakeAPI{}, nav)
	m.Init()

	// Signed out on a public screen: no action
	if len(nav.replaced) != 0 {
		t.Fatalf("unexpected navigation on Init: %v", nav.replaced)
	}

	m.SignIn(models.User{ID: 7, Name: "A", Email: "a@example.com"}, "tok")
	if nav.Current() != RouteToday {
		t.Errorf("after SignIn route = %q, want %q", nav.Current(), RouteToday)
	}

	m.SignOut()
	if nav.Current() != RouteOnboarding {
		t.Errorf("after SignOut route = %q, want %q", nav.Current(), RouteOnboarding)
	}
}
