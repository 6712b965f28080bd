package model

import "github.com/shopspring/decimal"

// KPIKind tells the shell how to format a KPI value.
type KPIKind string

const (
	KPIMoney   KPIKind = "money"
	KPICount   KPIKind = "count"
	KPIPercent KPIKind = "percent"
)

// KPI is a dashboard summary card.
type KPI struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Kind  KPIKind         `json:"kind"`
	Trend decimal.Decimal `json:"trend"` // percent change versus the previous period
}

// ChartKind selects the renderer in the shell.
type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ChartPoint is one labelled value of a chart series.
type ChartPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Chart is a single chart panel.
type Chart struct {
	Title  string       `json:"title"`
	Kind   ChartKind    `json:"kind"`
	Points []ChartPoint `json:"points"`
}

// Dashboard is the role-specific landing page content.
type Dashboard struct {
	Role   Role    `json:"role"`
	KPIs   []KPI   `json:"kpis"`
	Charts []Chart `json:"charts"`
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func weekly(values ...string) []ChartPoint {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	points := make([]ChartPoint, 0, len(values))
	for i, v := range values {
		points = append(points, ChartPoint{Label: days[i%len(days)], Value: d(v)})
	}
	return points
}

// MockDashboards is the static dashboard content per role.
var MockDashboards = map[Role]Dashboard{
	RoleSuperAdmin: {
		KPIs: []KPI{
			{Label: "dashboard.total_revenue", Value: d("2845000.00"), Kind: KPIMoney, Trend: d("12.5")},
			{Label: "dashboard.active_stores", Value: d("48"), Kind: KPICount, Trend: d("4.3")},
			{Label: "dashboard.total_users", Value: d("1260"), Kind: KPICount, Trend: d("8.1")},
			{Label: "dashboard.fulfilment_rate", Value: d("96.4"), Kind: KPIPercent, Trend: d("0.9")},
		},
		Charts: []Chart{
			{Title: "dashboard.revenue_by_region", Kind: ChartPie, Points: []ChartPoint{
				{Label: "North", Value: d("38")}, {Label: "West", Value: d("27")},
				{Label: "South", Value: d("22")}, {Label: "East", Value: d("13")},
			}},
			{Title: "dashboard.weekly_orders", Kind: ChartLine, Points: weekly("320", "410", "385", "452", "498", "530", "290")},
		},
	},
	RoleAdmin: {
		KPIs: []KPI{
			{Label: "dashboard.total_revenue", Value: d("965000.00"), Kind: KPIMoney, Trend: d("6.2")},
			{Label: "dashboard.active_stores", Value: d("12"), Kind: KPICount, Trend: d("0")},
			{Label: "dashboard.pending_orders", Value: d("87"), Kind: KPICount, Trend: d("-3.4")},
		},
		Charts: []Chart{
			{Title: "dashboard.weekly_orders", Kind: ChartBar, Points: weekly("120", "135", "128", "160", "172", "181", "95")},
		},
	},
	RoleManager: {
		KPIs: []KPI{
			{Label: "dashboard.store_revenue", Value: d("182500.50"), Kind: KPIMoney, Trend: d("3.7")},
			{Label: "dashboard.low_stock_items", Value: d("14"), Kind: KPICount, Trend: d("-12")},
			{Label: "dashboard.staff_on_shift", Value: d("9"), Kind: KPICount, Trend: d("0")},
		},
		Charts: []Chart{
			{Title: "dashboard.stock_by_category", Kind: ChartPie, Points: []ChartPoint{
				{Label: "Grains", Value: d("34")}, {Label: "Pulses", Value: d("21")},
				{Label: "Oils", Value: d("18")}, {Label: "Spices", Value: d("15")}, {Label: "Other", Value: d("12")},
			}},
		},
	},
	RoleSalesMan: {
		KPIs: []KPI{
			{Label: "dashboard.monthly_sales", Value: d("74200.00"), Kind: KPIMoney, Trend: d("9.8")},
			{Label: "dashboard.target_achieved", Value: d("71.5"), Kind: KPIPercent, Trend: d("5.5")},
			{Label: "dashboard.new_customers", Value: d("6"), Kind: KPICount, Trend: d("20")},
		},
		Charts: []Chart{
			{Title: "dashboard.daily_sales", Kind: ChartLine, Points: weekly("9100", "11250", "10400", "12800", "13050", "14900", "2700")},
		},
	},
	RolePurchaseMan: {
		KPIs: []KPI{
			{Label: "dashboard.open_purchase_orders", Value: d("23"), Kind: KPICount, Trend: d("-4")},
			{Label: "dashboard.purchase_spend", Value: d("412000.00"), Kind: KPIMoney, Trend: d("2.1")},
			{Label: "dashboard.active_suppliers", Value: d("31"), Kind: KPICount, Trend: d("3.3")},
		},
		Charts: []Chart{
			{Title: "dashboard.spend_by_supplier", Kind: ChartBar, Points: []ChartPoint{
				{Label: "Agro Mills", Value: d("128000")}, {Label: "Sun Oils", Value: d("96000")},
				{Label: "Spice Route", Value: d("74000")}, {Label: "Dal Traders", Value: d("114000")},
			}},
		},
	},
	RoleUser: {
		KPIs: []KPI{
			{Label: "dashboard.my_orders", Value: d("18"), Kind: KPICount, Trend: d("0")},
			{Label: "dashboard.my_spend", Value: d("23650.00"), Kind: KPIMoney, Trend: d("4.2")},
		},
		Charts: []Chart{
			{Title: "dashboard.spend_by_category", Kind: ChartPie, Points: []ChartPoint{
				{Label: "Grains", Value: d("45")}, {Label: "Oils", Value: d("30")}, {Label: "Spices", Value: d("25")},
			}},
		},
	},
}

// Panel is a generic static content block of a console page.
type Panel struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// MockPages holds the static panels of pages that have no live listing.
var MockPages = map[string][]Panel{
	RouteReports:    {{Title: "reports.available", Items: []string{"reports.sales_summary", "reports.stock_valuation", "reports.store_performance"}}},
	RouteSettings:   {{Title: "settings.sections", Items: []string{"settings.language", "settings.theme", "settings.notifications"}}},
	RouteOrders:     {{Title: "orders.recent", Items: []string{"ORD-10421", "ORD-10420", "ORD-10417"}}},
	RouteInventory:  {{Title: "inventory.low_stock", Items: []string{"Basmati Rice 25kg", "Toor Dal 30kg", "Mustard Oil 15L"}}},
	RouteCustomers:  {{Title: "customers.top", Items: []string{"Sharma Provisions", "Gupta Kirana", "Patel Supermart"}}},
	RouteTargets:    {{Title: "targets.month", Items: []string{"targets.revenue", "targets.new_accounts"}}},
	RoutePurchases:  {{Title: "purchases.open", Items: []string{"PO-2207", "PO-2211", "PO-2214"}}},
	RouteSuppliers:  {{Title: "suppliers.active", Items: []string{"Agro Mills", "Sun Oils", "Spice Route", "Dal Traders"}}},
	RouteCategories: {{Title: "categories.featured", Items: []string{"category.grains", "category.pulses", "category.oils", "category.spices"}}},
	RouteProfile:    {{Title: "profile.sections", Items: []string{"profile.details", "profile.addresses", "profile.password"}}},
}
