package model

// Theme of the console shell.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when nothing was chosen yet.
const DefaultTheme = ThemeLight

// ParseTheme returns the theme named by s, or false when s is not a theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// Preference is the durable UI state of one identity.
type Preference struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Language string `gorm:"type:varchar(8);not null" json:"language"`
	Theme    Theme  `gorm:"type:varchar(8);not null" json:"theme"`
}

// TableName specifies the table name for GORM
func (Preference) TableName() string {
	return "console_preferences"
}
