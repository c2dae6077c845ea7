package authz

import (
	"strings"

	"condogate/internal/domain"
)

// Route is one entry of the data-driven navigation table, shared by the
// guard, the RequireRoles middleware, and the navigation endpoint. An empty
// RequiredRoles set means any authenticated user.
type Route struct {
	Path          string        `json:"path"`
	Label         string        `json:"label"`
	RequiredRoles []domain.Role `json:"-"`
}

var adminOnly = []domain.Role{domain.RoleAdministrator}

// Routes lists every navigable screen in presentation order.
var Routes = []Route{
	{Path: "/dashboard", Label: "Dashboard"},
	{Path: "/admin/dashboard", Label: "Dashboard", RequiredRoles: adminOnly},
	{Path: "/admin/people", Label: "Pessoas", RequiredRoles: adminOnly},
	{Path: "/admin/houses", Label: "Casas", RequiredRoles: adminOnly},
	{Path: "/access/register", Label: "Registrar Acesso"},
	{Path: "/access/history", Label: "Histórico"},
	{Path: "/deliveries", Label: "Encomendas"},
	{Path: "/notices", Label: "Avisos"},
	{Path: "/occurrences", Label: "Ocorrências"},
}

// RequiredRolesFor resolves the role set guarding a path: exact table match
// first, then the "/admin/" prefix, otherwise open to any authenticated user.
func RequiredRolesFor(path string) []domain.Role {
	for _, route := range Routes {
		if route.Path == path {
			return route.RequiredRoles
		}
	}
	if strings.HasPrefix(path, "/admin/") || path == "/admin" {
		return adminOnly
	}
	return nil
}

// MenuFor returns the ordered navigation entries visible to a role.
func MenuFor(role domain.Role) []Route {
	if role == domain.RoleAdministrator {
		return []Route{
			{Path: "/admin/dashboard", Label: "Dashboard", RequiredRoles: adminOnly},
			{Path: "/admin/people", Label: "Pessoas", RequiredRoles: adminOnly},
			{Path: "/admin/houses", Label: "Casas", RequiredRoles: adminOnly},
			{Path: "/access/register", Label: "Registrar Acesso"},
			{Path: "/access/history", Label: "Histórico"},
			{Path: "/deliveries", Label: "Encomendas"},
			{Path: "/notices", Label: "Avisos"},
			{Path: "/occurrences", Label: "Ocorrências"},
		}
	}
	return []Route{
		{Path: "/dashboard", Label: "Dashboard"},
		{Path: "/access/register", Label: "Registrar Acesso"},
		{Path: "/access/history", Label: "Histórico"},
		{Path: "/deliveries", Label: "Encomendas"},
		{Path: "/notices", Label: "Avisos"},
		{Path: "/occurrences", Label: "Ocorrências"},
	}
}
