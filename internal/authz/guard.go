// Package authz decides, per navigation request, whether the current role may
// proceed and where to redirect otherwise. The decision is pure: outcome
// values, never errors, and no session mutation.
package authz

import "condogate/internal/domain"

// SessionState mirrors the session restoration lifecycle.
type SessionState string

const (
	StateLoading         SessionState = "loading"
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

// Outcome of a guard decision.
type Outcome string

const (
	OutcomeRender   Outcome = "render"
	OutcomeRedirect Outcome = "redirect"
	OutcomeLoading  Outcome = "loading"
)

const (
	LoginPath              = "/login"
	GatekeeperDashboard    = "/dashboard"
	AdministratorDashboard = "/admin/dashboard"
)

// Decision is the three-outcome result of a navigation request. From carries
// the originally requested path on unauthenticated redirects so login can
// resume there afterwards.
type Decision struct {
	Outcome Outcome
	Target  string
	From    string
}

// Decide evaluates one navigation request.
//
// Loading suspends rendering with no redirect decision. Without a user, every
// protected route redirects to login with the origin captured. With a user,
// an empty required-role set grants access unconditionally; a non-matching
// role redirects to the role's own dashboard and never renders or errors.
func Decide(state SessionState, user *domain.User, requiredRoles []domain.Role, path string) Decision {
	if state == StateLoading {
		return Decision{Outcome: OutcomeLoading}
	}
	if user == nil || state == StateUnauthenticated {
		return Decision{Outcome: OutcomeRedirect, Target: LoginPath, From: path}
	}
	if len(requiredRoles) == 0 {
		return Decision{Outcome: OutcomeRender}
	}
	for _, role := range requiredRoles {
		if user.Role == role {
			return Decision{Outcome: OutcomeRender}
		}
	}
	return Decision{Outcome: OutcomeRedirect, Target: FallbackFor(user.Role)}
}

// FallbackFor is the role-specific redirect destination used when a role is
// not allowed on a route.
func FallbackFor(role domain.Role) string {
	if role == domain.RoleAdministrator {
		return AdministratorDashboard
	}
	return GatekeeperDashboard
}
