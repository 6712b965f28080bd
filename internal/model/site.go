package model

// Category is a product category of the public storefront.
type Category struct {
	Slug        string `json:"slug"`
	NameKey     string `json:"nameKey"`
	Description string `json:"description"`
	ImageKey    string `json:"imageKey"`
}

// DefaultCategories are the storefront categories.
var DefaultCategories = []Category{
	{Slug: "grains", NameKey: "category.grains", Description: "Rice, wheat and millets in bulk packs", ImageKey: "grains"},
	{Slug: "pulses", NameKey: "category.pulses", Description: "Dals and lentils sourced directly from mills", ImageKey: "pulses"},
	{Slug: "oils", NameKey: "category.oils", Description: "Edible oils and ghee in tins and cans", ImageKey: "oils"},
	{Slug: "spices", NameKey: "category.spices", Description: "Whole and ground spices", ImageKey: "spices"},
	{Slug: "beverages", NameKey: "category.beverages", Description: "Tea, coffee and soft drinks by the case", ImageKey: "beverages"},
	{Slug: "household", NameKey: "category.household", Description: "Cleaning and household essentials", ImageKey: "household"},
}

// About is the public "about us" content.
type About struct {
	TitleKey   string   `json:"titleKey"`
	SummaryKey string   `json:"summaryKey"`
	Highlights []string `json:"highlights"`
}

// DefaultAbout is served by the public site.
var DefaultAbout = About{
	TitleKey:   "about.title",
	SummaryKey: "about.summary",
	Highlights: []string{"about.highlight_stores", "about.highlight_delivery", "about.highlight_pricing"},
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,simple_email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}
