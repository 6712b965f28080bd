package model

import "strings"

// Role is the permission tag carried by a session. It determines the navigation and
// the dashboard variant shown to the user.
type Role string

// Role codes as constants
const (
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleAdmin       Role = "ADMIN"
	RoleManager     Role = "MANAGER"
	RoleSalesMan    Role = "SALES_MAN"
	RolePurchaseMan Role = "PURCHASE_MAN"
	RoleUser        Role = "USER"
)

// DefaultRole is the least-privileged role, used whenever a role is missing or unknown.
const DefaultRole = RoleUser

// AllRoles lists the closed role set in display order.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleSalesMan,
	RolePurchaseMan,
	RoleUser,
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes s ("super-admin", "super_admin", "SUPER_ADMIN") into a Role.
// The second return value is false when s does not name a known role.
func ParseRole(s string) (Role, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	r := Role(norm)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// RoleInfo describes a role for pickers in the user management screens.
type RoleInfo struct {
	Code        Role   `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultRoles defines the roles shown in the console
var DefaultRoles = []RoleInfo{
	{Code: RoleSuperAdmin, Name: "Super Administrator", Description: "Full access across every store"},
	{Code: RoleAdmin, Name: "Administrator", Description: "Store and user administration"},
	{Code: RoleManager, Name: "Store Manager", Description: "Runs a single store: stock, orders and staff"},
	{Code: RoleSalesMan, Name: "Salesman", Description: "Customer orders and sales targets"},
	{Code: RolePurchaseMan, Name: "Purchase Manager", Description: "Suppliers and purchase orders"},
	{Code: RoleUser, Name: "Customer", Description: "Storefront customer account"},
}
