package service

import (
	"fmt"

	"go-wholesale-console/internal/model"
)

// NavigationService resolves role menus and role styles. Every lookup is total: a role
// missing from the tables resolves like model.DefaultRole.
type NavigationService struct {
	entries map[model.Role][]model.NavigationEntry
	styles  map[model.Role]model.RoleStyle
}

// NewNavigationService copies the tables and checks that every role has a non-empty menu
// and a style.
func NewNavigationService(entries map[model.Role][]model.NavigationEntry, styles map[model.Role]model.RoleStyle) (*NavigationService, error) {
	s := &NavigationService{
		entries: make(map[model.Role][]model.NavigationEntry, len(entries)),
		styles:  make(map[model.Role]model.RoleStyle, len(styles)),
	}
	for role, list := range entries {
		s.entries[role] = append([]model.NavigationEntry(nil), list...)
	}
	for role, style := range styles {
		s.styles[role] = style
	}

	for _, role := range model.AllRoles {
		if len(s.entries[role]) == 0 {
			return nil, fmt.Errorf("navigation: role %s has no entries", role)
		}
		if _, ok := s.styles[role]; !ok {
			return nil, fmt.Errorf("navigation: role %s has no style", role)
		}
	}
	return s, nil
}

// NewDefaultNavigationService uses the built-in tables.
func NewDefaultNavigationService() (*NavigationService, error) {
	return NewNavigationService(model.DefaultNavigation, model.DefaultRoleStyles)
}

// ResolveNavigation returns the ordered menu of role. The slice is a copy.
func (s *NavigationService) ResolveNavigation(role model.Role) []model.NavigationEntry {
	list, ok := s.entries[role]
	if !ok || len(list) == 0 {
		list = s.entries[model.DefaultRole]
	}
	return append([]model.NavigationEntry(nil), list...)
}

// ResolveRoleStyle returns the style descriptor of role.
func (s *NavigationService) ResolveRoleStyle(role model.Role) model.RoleStyle {
	if style, ok := s.styles[role]; ok {
		return style
	}
	return s.styles[model.DefaultRole]
}

// ResolveRoleColor returns the accent color tag of role.
func (s *NavigationService) ResolveRoleColor(role model.Role) string {
	return s.ResolveRoleStyle(role).ColorTag
}

// CanAccess reports whether route is on role's menu.
func (s *NavigationService) CanAccess(role model.Role, route string) bool {
	for _, e := range s.ResolveNavigation(role) {
		if e.Route == route {
			return true
		}
	}
	return false
}

// Routes returns every distinct route referenced by the tables, in table order of AllRoles.
func (s *NavigationService) Routes() []string {
	seen := make(map[string]bool)
	var routes []string
	for _, role := range model.AllRoles {
		for _, e := range s.entries[role] {
			if !seen[e.Route] {
				seen[e.Route] = true
				routes = append(routes, e.Route)
			}
		}
	}
	return routes
}

// ValidateRoutes fails when an entry points at a route that is not registered.
func (s *NavigationService) ValidateRoutes(registered []string) error {
	known := make(map[string]bool, len(registered))
	for _, r := range registered {
		known[r] = true
	}
	for _, role := range model.AllRoles {
		for _, e := range s.entries[role] {
			if !known[e.Route] {
				return fmt.Errorf("navigation: role %s entry %q points to unknown route %s", role, e.Label, e.Route)
			}
		}
	}
	return nil
}
