package session

// Route identifies a screen in the navigation sense: which part of the
// app the user is currently on.
type Route string

const (
	RouteOnboarding Route = "onboarding"
	RouteSignIn     Route = "signin"
	RouteLogin      Route = "login"
	RouteRegister   Route = "register"
	RouteToday      Route = "today"
)

// publicRoutes are reachable without a session.
var publicRoutes = map[Route]bool{
	RouteOnboarding: true,
	RouteSignIn:     true,
	RouteLogin:      true,
	RouteRegister:   true,
}

// Navigator is the manager's outlet for forced navigation. Replace swaps
// the current route without growing history.
type Navigator interface {
	Current() Route
	Replace(Route)
}

// EvaluateRedirect decides whether the given session state may remain on
// the given route. It returns the route to force-navigate to and whether
// any navigation is needed at all.
//
// The function is pure and idempotent: evaluating the route it redirects
// to yields no further action. It must not be consulted while the state
// is still StateUnknown; doing so would flash-redirect to onboarding
// before storage has been read, so it reports no action for that state.
func EvaluateRedirect(state State, current Route) (Route, bool) {
	switch state {
	case StateSignedOut:
		if !publicRoutes[current] {
			return RouteOnboarding, true
		}
	case StateSignedIn:
		if publicRoutes[current] {
			return RouteToday, true
		}
	}

	return current, false
}
