package model

// NavigationEntry is a single menu item. Label is an i18n key.
type NavigationEntry struct {
	Label    string `json:"label"`
	IconKey  string `json:"iconKey"`
	Route    string `json:"route"`
	ColorTag string `json:"colorTag"`
}

// Console page routes referenced by the navigation table.
const (
	RouteDashboard  = "/app/dashboard"
	RouteStores     = "/app/stores"
	RouteUsers      = "/app/users"
	RouteReports    = "/app/reports"
	RouteSettings   = "/app/settings"
	RouteOrders     = "/app/orders"
	RouteInventory  = "/app/inventory"
	RouteCustomers  = "/app/customers"
	RouteTargets    = "/app/targets"
	RoutePurchases  = "/app/purchases"
	RouteSuppliers  = "/app/suppliers"
	RouteCategories = "/app/categories"
	RouteProfile    = "/app/profile"
)

// Shared entries; the table below only references them, so every role sees the same
// label/icon for the same page.
var (
	navDashboard  = NavigationEntry{Label: "nav.dashboard", IconKey: "layout-dashboard", Route: RouteDashboard, ColorTag: "indigo"}
	navStores     = NavigationEntry{Label: "nav.stores", IconKey: "store", Route: RouteStores, ColorTag: "emerald"}
	navUsers      = NavigationEntry{Label: "nav.users", IconKey: "users", Route: RouteUsers, ColorTag: "sky"}
	navStaff      = NavigationEntry{Label: "nav.staff", IconKey: "users", Route: RouteUsers, ColorTag: "sky"}
	navReports    = NavigationEntry{Label: "nav.reports", IconKey: "bar-chart", Route: RouteReports, ColorTag: "violet"}
	navSettings   = NavigationEntry{Label: "nav.settings", IconKey: "settings", Route: RouteSettings, ColorTag: "slate"}
	navOrders     = NavigationEntry{Label: "nav.orders", IconKey: "shopping-cart", Route: RouteOrders, ColorTag: "amber"}
	navInventory  = NavigationEntry{Label: "nav.inventory", IconKey: "package", Route: RouteInventory, ColorTag: "lime"}
	navCustomers  = NavigationEntry{Label: "nav.customers", IconKey: "contact", Route: RouteCustomers, ColorTag: "rose"}
	navTargets    = NavigationEntry{Label: "nav.targets", IconKey: "target", Route: RouteTargets, ColorTag: "orange"}
	navPurchases  = NavigationEntry{Label: "nav.purchases", IconKey: "truck", Route: RoutePurchases, ColorTag: "teal"}
	navSuppliers  = NavigationEntry{Label: "nav.suppliers", IconKey: "factory", Route: RouteSuppliers, ColorTag: "cyan"}
	navCategories = NavigationEntry{Label: "nav.categories", IconKey: "grid", Route: RouteCategories, ColorTag: "green"}
	navProfile    = NavigationEntry{Label: "nav.profile", IconKey: "user", Route: RouteProfile, ColorTag: "gray"}
)

// DefaultNavigation maps every role to its ordered menu. Display order is slice order.
var DefaultNavigation = map[Role][]NavigationEntry{
	RoleSuperAdmin:  {navDashboard, navStores, navUsers, navReports, navSettings},
	RoleAdmin:       {navDashboard, navStores, navUsers, navOrders, navSettings},
	RoleManager:     {navDashboard, navInventory, navOrders, navStaff, navReports},
	RoleSalesMan:    {navDashboard, navOrders, navCustomers, navTargets},
	RolePurchaseMan: {navDashboard, navPurchases, navSuppliers, navInventory},
	RoleUser:        {navDashboard, navCategories, navOrders, navProfile},
}

// AssignableRoles lists, per role, the roles it may give to a new user. Roles missing
// here cannot create users even when their menu shows the users page.
var AssignableRoles = map[Role][]Role{
	RoleSuperAdmin: {RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMan, RolePurchaseMan, RoleUser},
	RoleAdmin:      {RoleManager, RoleSalesMan, RolePurchaseMan, RoleUser},
	RoleManager:    {RoleSalesMan, RolePurchaseMan, RoleUser},
}

// CanAssign reports whether actor may create a user with role target.
func CanAssign(actor, target Role) bool {
	for _, r := range AssignableRoles[actor] {
		if r == target {
			return true
		}
	}
	return false
}

// RoleStyle is the accent used for a role's badge and highlights.
type RoleStyle struct {
	ColorTag string `json:"colorTag"`
	Accent   string `json:"accent"`
	BadgeKey string `json:"badgeKey"`
}

// DefaultRoleStyles is kept apart from DefaultNavigation; both must cover AllRoles.
var DefaultRoleStyles = map[Role]RoleStyle{
	RoleSuperAdmin:  {ColorTag: "purple", Accent: "#7c3aed", BadgeKey: "role.super_admin"},
	RoleAdmin:       {ColorTag: "blue", Accent: "#2563eb", BadgeKey: "role.admin"},
	RoleManager:     {ColorTag: "green", Accent: "#16a34a", BadgeKey: "role.manager"},
	RoleSalesMan:    {ColorTag: "orange", Accent: "#ea580c", BadgeKey: "role.sales_man"},
	RolePurchaseMan: {ColorTag: "teal", Accent: "#0d9488", BadgeKey: "role.purchase_man"},
	RoleUser:        {ColorTag: "gray", Accent: "#4b5563", BadgeKey: "role.user"},
}
