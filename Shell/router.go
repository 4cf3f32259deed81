package Shell

import (
	"Tractor/Models"
	"Tractor/Session"
)

// State is the navigation state machine: who is looking at the console.
type State int

const (
	Unauthenticated State = iota
	AuthenticatedAdmin
	AuthenticatedSalesManager
)

const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteRoot      = "/"
	RouteDashboard = "/dashboard"

	RouteNormalSale    = "/sales/normal"
	RouteExchangeSale  = "/sales/exchange"
	RouteNewVehicles   = "/inventory/new"
	RouteUsedVehicles  = "/inventory/used"
	RouteNotifications = "/notifications"
	RouteReports       = "/reports"
)

// protectedRoutes maps each authenticated route to the roles allowed on it.
// An empty list means any authenticated user.
var protectedRoutes = map[string][]string{
	RouteDashboard:     nil,
	RouteNormalSale:    nil,
	RouteExchangeSale:  nil,
	RouteUsedVehicles:  nil,
	RouteNotifications: nil,
	RouteNewVehicles:   {Models.RoleAdmin},
	RouteReports:       {Models.RoleAdmin},
}

// Router decides which page a requested path actually lands on. It only reads
// the session; writes stay with the auth flow and the shell's expiry handler.
type Router struct {
	Session *Session.Store
}

func (r *Router) State() State {
	user, ok := r.Session.CurrentUser()
	if !ok || !r.Session.Authenticated() {
		return Unauthenticated
	}
	if user.Role == Models.RoleAdmin {
		return AuthenticatedAdmin
	}
	return AuthenticatedSalesManager
}

// Resolve applies the redirect rules: unauthenticated access to anything
// protected lands on login; an authenticated user asking for login or
// register lands on the dashboard; a role-mismatched path lands on the
// role's own dashboard, never an error page; unknown paths fall back to the
// dashboard root.
func (r *Router) Resolve(path string) string {
	authenticated := r.State() != Unauthenticated

	if path == RouteLogin || path == RouteRegister {
		if authenticated {
			return RouteDashboard
		}
		return path
	}

	if !authenticated {
		return RouteLogin
	}

	if path == RouteRoot {
		return RouteDashboard
	}

	roles, known := protectedRoutes[path]
	if !known {
		return RouteDashboard
	}
	if len(roles) == 0 {
		return path
	}

	user, _ := r.Session.CurrentUser()
	for _, role := range roles {
		if user.Role == role {
			return path
		}
	}
	return RouteDashboard
}
